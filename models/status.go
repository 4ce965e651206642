package models

// Result discriminants. Every operation resolves to exactly one of these,
// callers branch on the status field.
const (
	StatusSuccess        = "success"
	StatusError          = "error"
	StatusNotFound       = "not_found"
	StatusInvalidPayload = "invalid_payload"
)

// StatusResponse is the discriminated envelope returned for every
// non-record result (errors, deletes and status updates)
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthCheckResponse returns the health check response, exciting stuff
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
