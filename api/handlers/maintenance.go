package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/musecoding/fleet-management-sytem/api"
	"github.com/musecoding/fleet-management-sytem/config"
	"github.com/musecoding/fleet-management-sytem/databases"
	"github.com/musecoding/fleet-management-sytem/models"
)

// Maintenance exported for testing purposes
type Maintenance struct {
	DB  databases.MaintenanceDatabase
	VDB databases.VehicleDatabase
}

// ScheduleMaintenanceHandler schedules maintenance for an existing vehicle.
// The scheduled date must be strictly after the creation time.
func (m Maintenance) ScheduleMaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	var payload models.MaintenancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if payload.VehicleID == "" || payload.Description == "" {
		config.ErrorStatus("vehicleID and description are required", http.StatusBadRequest, w, errors.New("missing required field"))
		return
	}

	now := time.Now()
	if !payload.ScheduledDate.After(now) {
		config.ErrorStatus("scheduledDate must be in the future", http.StatusBadRequest, w, errors.New("scheduledDate not after creation time"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := m.VDB.FindOne(ctx, bson.M{"_id": payload.VehicleID}); err != nil {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
		return
	}

	maintenance := models.Maintenance{
		ID:            uuid.New().String(),
		VehicleID:     payload.VehicleID,
		Description:   payload.Description,
		ScheduledDate: payload.ScheduledDate,
		Status:        "pending",
		CreatedAt:     now,
	}

	if _, err := m.DB.InsertOne(ctx, maintenance); err != nil {
		config.ErrorStatus("failed to schedule maintenance", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(maintenance)
}

// MaintenanceHandler returns all maintenance records
func (m Maintenance) MaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := m.DB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get maintenances", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		config.ErrorStatus("no maintenances found", http.StatusNotFound, w, nil)
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
