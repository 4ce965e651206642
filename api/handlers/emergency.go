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

// EmergencyAssistance exported for testing purposes
type EmergencyAssistance struct {
	DB  databases.EmergencyAssistanceDatabase
	VDB databases.VehicleDatabase
}

// RequestEmergencyAssistanceHandler creates an emergency assistance request
// for an existing vehicle and broadcasts it to connected ops clients
func (e EmergencyAssistance) RequestEmergencyAssistanceHandler(w http.ResponseWriter, r *http.Request) {
	var payload models.EmergencyAssistancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if payload.VehicleID == "" || payload.Description == "" || payload.Location == "" {
		config.ErrorStatus("vehicleID, description and location are required", http.StatusBadRequest, w, errors.New("missing required field"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := e.VDB.FindOne(ctx, bson.M{"_id": payload.VehicleID}); err != nil {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
		return
	}

	emergency := models.EmergencyAssistance{
		ID:          uuid.New().String(),
		VehicleID:   payload.VehicleID,
		Description: payload.Description,
		Location:    payload.Location,
		Status:      "pending",
		CreatedAt:   time.Now(),
	}

	if _, err := e.DB.InsertOne(ctx, emergency); err != nil {
		config.ErrorStatus("failed to create emergency assistance request", http.StatusInternalServerError, w, err)
		return
	}

	broadcastEmergencyAlert(emergency)

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(emergency)
}

// EmergencyAssistanceHandler returns all emergency assistance requests
func (e EmergencyAssistance) EmergencyAssistanceHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := e.DB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get emergency assistance requests", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		config.ErrorStatus("no emergency assistance requests found", http.StatusNotFound, w, nil)
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
