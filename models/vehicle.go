package models

import "time"

// Vehicle status tags. The set is closed but no transition rules are
// enforced, any status may follow any other.
const (
	VehicleStatusAvailable   = "available"
	VehicleStatusBooked      = "booked"
	VehicleStatusMaintenance = "maintenance"
)

// Vehicle holds the structure for the vehicles collection
type Vehicle struct {
	ID                 string    `json:"_id" bson:"_id"`
	RegistrationNumber string    `json:"registrationNumber" bson:"registrationNumber"`
	Model              string    `json:"model" bson:"model"`
	Capacity           int       `json:"capacity" bson:"capacity"`
	Status             string    `json:"status" bson:"status"`
	Location           string    `json:"location" bson:"location"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
}

// VehiclePayload is the caller supplied input to create a vehicle
type VehiclePayload struct {
	RegistrationNumber string `json:"registrationNumber"`
	Model              string `json:"model"`
	Capacity           int    `json:"capacity"`
	Location           string `json:"location"`
}

// VehicleStatusPayload is the caller supplied input to update a vehicle status
type VehicleStatusPayload struct {
	Status string `json:"status"`
}

// ValidVehicleStatus reports whether s is one of the closed vehicle status tags
func ValidVehicleStatus(s string) bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusBooked, VehicleStatusMaintenance:
		return true
	}
	return false
}
