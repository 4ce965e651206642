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

// Vehicle exported for testing purposes
type Vehicle struct {
	DB databases.VehicleDatabase
}

// CreateVehicleHandler creates a vehicle with status available
func (v Vehicle) CreateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	var payload models.VehiclePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if payload.RegistrationNumber == "" || payload.Model == "" || payload.Location == "" {
		config.ErrorStatus("registrationNumber, model and location are required", http.StatusBadRequest, w, errors.New("missing required field"))
		return
	}
	if payload.Capacity <= 0 {
		config.ErrorStatus("capacity must be a positive integer", http.StatusBadRequest, w, errors.New("capacity out of range"))
		return
	}

	vehicle := models.Vehicle{
		ID:                 uuid.New().String(),
		RegistrationNumber: payload.RegistrationNumber,
		Model:              payload.Model,
		Capacity:           payload.Capacity,
		Status:             models.VehicleStatusAvailable,
		Location:           payload.Location,
		CreatedAt:          time.Now(),
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := v.DB.InsertOne(ctx, vehicle); err != nil {
		config.ErrorStatus("failed to create vehicle", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(vehicle)
}

// VehicleHandler returns all vehicles
func (v Vehicle) VehicleHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get vehicles", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		config.ErrorStatus("no vehicles found", http.StatusNotFound, w, nil)
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

// VehicleByIDHandler returns a vehicle by ID
func (v Vehicle) VehicleByIDHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]

	zap.S().Debugf("vehicle_id: %v", vehicleID)

	if vehicleID == "" {
		config.ErrorStatus("vehicle_id is required", http.StatusBadRequest, w, errors.New("empty vehicle_id"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.FindOne(ctx, bson.M{"_id": vehicleID})
	if err != nil {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
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

// VehiclesByRegistrationNumberHandler returns all vehicles that match the given registration number
func (v Vehicle) VehiclesByRegistrationNumberHandler(w http.ResponseWriter, r *http.Request) {
	registrationNumber := mux.Vars(r)["registration_number"]

	zap.S().Debugf("registration_number: '%v'", registrationNumber)

	if registrationNumber == "" {
		config.ErrorStatus("registration_number is required", http.StatusBadRequest, w, errors.New("empty registration_number"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.Find(ctx, bson.M{"registrationNumber": registrationNumber})
	if err != nil {
		config.ErrorStatus("failed to get vehicles by registration number", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		config.ErrorStatus("no vehicles found with registration number", http.StatusNotFound, w, nil)
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

// VehiclesByModelHandler returns all vehicles that match the given model
func (v Vehicle) VehiclesByModelHandler(w http.ResponseWriter, r *http.Request) {
	model := mux.Vars(r)["model"]

	zap.S().Debugf("model: '%v'", model)

	if model == "" {
		config.ErrorStatus("model is required", http.StatusBadRequest, w, errors.New("empty model"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.Find(ctx, bson.M{"model": model})
	if err != nil {
		config.ErrorStatus("failed to get vehicles by model", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		config.ErrorStatus("no vehicles found with model", http.StatusNotFound, w, nil)
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

// UpdateVehicleStatusHandler overwrites a vehicle's status. The status must
// be one of the closed tags but any status may follow any other.
func (v Vehicle) UpdateVehicleStatusHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]

	if vehicleID == "" {
		config.ErrorStatus("vehicle_id is required", http.StatusBadRequest, w, errors.New("empty vehicle_id"))
		return
	}

	var payload models.VehicleStatusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if !models.ValidVehicleStatus(payload.Status) {
		config.ErrorStatus("status must be one of available, booked, maintenance", http.StatusBadRequest, w, errors.New("unknown status"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := v.DB.FindOne(ctx, bson.M{"_id": vehicleID}); err != nil {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
		return
	}

	if err := v.DB.UpdateOne(ctx, bson.M{"_id": vehicleID}, bson.M{"$set": bson.M{"status": payload.Status}}); err != nil {
		config.ErrorStatus("failed to update vehicle status", http.StatusInternalServerError, w, err)
		return
	}

	config.SuccessStatus("vehicle status updated successfully", w)
}

// DeleteVehicleHandler deletes a vehicle by ID. Bookings, fuel logs,
// maintenance schedules and emergency requests that reference the vehicle
// are left untouched.
func (v Vehicle) DeleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]

	if vehicleID == "" {
		config.ErrorStatus("vehicle_id is required", http.StatusBadRequest, w, errors.New("empty vehicle_id"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := v.DB.FindOne(ctx, bson.M{"_id": vehicleID}); err != nil {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
		return
	}

	if _, err := v.DB.DeleteOne(ctx, bson.M{"_id": vehicleID}); err != nil {
		config.ErrorStatus("failed to delete vehicle", http.StatusInternalServerError, w, err)
		return
	}

	config.SuccessStatus("vehicle deleted successfully", w)
}
