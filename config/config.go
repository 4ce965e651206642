package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/musecoding/fleet-management-sytem/models"
)

// Config holds the project config values
type Config struct {
	URL           string
	DatabaseName  string
	BaseURL       string
	Port          string
	JWTSecret     string
	SendgridKey   string
	FleetOpsEmail string
	SenderEmail   string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:           os.Getenv("DB_URI"),
		DatabaseName:  os.Getenv("DB_NAME"),
		BaseURL:       os.Getenv("BASE_URL"),
		Port:          os.Getenv("PORT"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SendgridKey:   os.Getenv("SENDGRID_API_KEY"),
		FleetOpsEmail: os.Getenv("FLEET_OPS_EMAIL"),
		SenderEmail:   os.Getenv("SENDER_EMAIL"),
	}

}

// ErrorStatus logs the failure and writes the discriminated error envelope.
// The status discriminant is derived from the http code: 400 maps to
// invalid_payload, 404 to not_found, everything else to error.
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %v", message, err)
	}
	_ = json.NewEncoder(w).Encode(models.StatusResponse{
		Status:  statusForCode(httpStatusCode),
		Message: msg,
	})
}

// SuccessStatus writes the success envelope for operations that return a
// message rather than a record (deletes and status updates)
func SuccessStatus(message string, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.StatusResponse{
		Status:  models.StatusSuccess,
		Message: message,
	})
}

func statusForCode(code int) string {
	switch code {
	case http.StatusBadRequest:
		return models.StatusInvalidPayload
	case http.StatusNotFound:
		return models.StatusNotFound
	default:
		return models.StatusError
	}
}
