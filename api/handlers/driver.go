package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/musecoding/fleet-management-sytem/api"
	"github.com/musecoding/fleet-management-sytem/config"
	"github.com/musecoding/fleet-management-sytem/databases"
	"github.com/musecoding/fleet-management-sytem/models"
)

// Driver exported for testing purposes
type Driver struct {
	DB databases.DriverDatabase
}

// CreateDriverHandler creates a driver owned by the calling account
func (d Driver) CreateDriverHandler(w http.ResponseWriter, r *http.Request) {
	var payload models.DriverPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if payload.Name == "" || payload.LicenseNumber == "" || payload.ContactInfo == "" {
		config.ErrorStatus("name, licenseNumber and contactInfo are required", http.StatusBadRequest, w, errors.New("missing required field"))
		return
	}

	accountID := ""
	if principal, ok := api.PrincipalFromContext(r.Context()); ok {
		accountID = principal.ID()
	}

	driver := models.Driver{
		ID:            uuid.New().String(),
		AccountID:     accountID,
		Name:          payload.Name,
		LicenseNumber: payload.LicenseNumber,
		ContactInfo:   payload.ContactInfo,
		Points:        0,
		CreatedAt:     time.Now(),
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := d.DB.InsertOne(ctx, driver); err != nil {
		config.ErrorStatus("failed to create driver", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(driver)
}

// DriverHandler returns all drivers
func (d Driver) DriverHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := d.DB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get drivers", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		config.ErrorStatus("no drivers found", http.StatusNotFound, w, nil)
		return
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DriverByIDHandler returns a driver by ID
func (d Driver) DriverByIDHandler(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["driver_id"]

	zap.S().Debugf("driver_id: %v", driverID)

	if driverID == "" {
		config.ErrorStatus("driver_id is required", http.StatusBadRequest, w, errors.New("empty driver_id"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := d.DB.FindOne(ctx, bson.M{"_id": driverID})
	if err != nil {
		config.ErrorStatus("failed to get driver by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DriversByPrincipalHandler returns the drivers created by the calling account
func (d Driver) DriversByPrincipalHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := api.PrincipalFromContext(r.Context())
	if !ok {
		config.ErrorStatus("no authenticated principal", http.StatusBadRequest, w, errors.New("missing principal"))
		return
	}

	zap.S().Debugf("principal: '%v'", principal.UserName())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := d.DB.Find(ctx, bson.M{"accountID": principal.ID()})
	if err != nil {
		config.ErrorStatus("failed to get drivers by principal", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		config.ErrorStatus("no drivers found for principal", http.StatusNotFound, w, nil)
		return
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DriversByLicenseNumberHandler returns all drivers that match the given license number
func (d Driver) DriversByLicenseNumberHandler(w http.ResponseWriter, r *http.Request) {
	licenseNumber := mux.Vars(r)["license_number"]

	zap.S().Debugf("license_number: '%v'", licenseNumber)

	if licenseNumber == "" {
		config.ErrorStatus("license_number is required", http.StatusBadRequest, w, errors.New("empty license_number"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := d.DB.Find(ctx, bson.M{"licenseNumber": licenseNumber})
	if err != nil {
		config.ErrorStatus("failed to get drivers by license number", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		config.ErrorStatus("no drivers found with license number", http.StatusNotFound, w, nil)
		return
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteDriverHandler deletes a driver by ID. Bookings that reference the
// driver are left untouched.
func (d Driver) DeleteDriverHandler(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["driver_id"]

	if driverID == "" {
		config.ErrorStatus("driver_id is required", http.StatusBadRequest, w, errors.New("empty driver_id"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := d.DB.FindOne(ctx, bson.M{"_id": driverID}); err != nil {
		config.ErrorStatus("failed to get driver by ID", http.StatusNotFound, w, err)
		return
	}

	if _, err := d.DB.DeleteOne(ctx, bson.M{"_id": driverID}); err != nil {
		config.ErrorStatus("failed to delete driver", http.StatusInternalServerError, w, err)
		return
	}

	config.SuccessStatus("driver deleted successfully", w)
}
