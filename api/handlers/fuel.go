package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/musecoding/fleet-management-sytem/api"
	"github.com/musecoding/fleet-management-sytem/config"
	"github.com/musecoding/fleet-management-sytem/databases"
	"github.com/musecoding/fleet-management-sytem/models"
)

// FuelConsumption exported for testing purposes
type FuelConsumption struct {
	DB  databases.FuelConsumptionDatabase
	VDB databases.VehicleDatabase
}

// RecordFuelConsumptionHandler records fuel consumption for an existing
// vehicle. The amount stays a decimal string on the wire but must parse to
// a positive number.
func (f FuelConsumption) RecordFuelConsumptionHandler(w http.ResponseWriter, r *http.Request) {
	var payload models.FuelConsumptionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if payload.VehicleID == "" || payload.Amount == "" || payload.Date.IsZero() {
		config.ErrorStatus("vehicleID, amount and date are required", http.StatusBadRequest, w, errors.New("missing required field"))
		return
	}

	amount, err := strconv.ParseFloat(payload.Amount, 64)
	if err != nil {
		config.ErrorStatus("amount must be a decimal number", http.StatusBadRequest, w, err)
		return
	}
	if amount <= 0 {
		config.ErrorStatus("amount must be positive", http.StatusBadRequest, w, errors.New("amount out of range"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := f.VDB.FindOne(ctx, bson.M{"_id": payload.VehicleID}); err != nil {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
		return
	}

	fuel := models.FuelConsumption{
		ID:        uuid.New().String(),
		VehicleID: payload.VehicleID,
		Amount:    payload.Amount,
		Date:      payload.Date,
	}

	if _, err := f.DB.InsertOne(ctx, fuel); err != nil {
		config.ErrorStatus("failed to record fuel consumption", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(fuel)
}

// FuelConsumptionHandler returns all fuel consumption records
func (f FuelConsumption) FuelConsumptionHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := f.DB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get fuel consumptions", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		config.ErrorStatus("no fuel consumptions found", http.StatusNotFound, w, nil)
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
