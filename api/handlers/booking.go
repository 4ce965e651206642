package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
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

// Booking exported for testing purposes
type Booking struct {
	DB  databases.BookingDatabase
	VDB databases.VehicleDatabase
	DDB databases.DriverDatabase
}

// CreateBookingHandler creates a booking. The referenced vehicle and driver
// must exist and the vehicle must be available at the moment of creation;
// neither reference is re-validated afterwards and the vehicle record is
// not mutated.
func (b Booking) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	var payload models.BookingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if payload.VehicleID == "" || payload.DriverID == "" || payload.FromLocation == "" || payload.ToLocation == "" {
		config.ErrorStatus("vehicleID, driverID, fromLocation and toLocation are required", http.StatusBadRequest, w, errors.New("missing required field"))
		return
	}
	if payload.StartTime.IsZero() || payload.EndTime.IsZero() {
		config.ErrorStatus("startTime and endTime are required", http.StatusBadRequest, w, errors.New("missing required field"))
		return
	}

	now := time.Now()
	if !payload.StartTime.After(now) {
		config.ErrorStatus("startTime must be in the future", http.StatusBadRequest, w, errors.New("startTime not after creation time"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	vehicle, err := b.VDB.FindOne(ctx, bson.M{"_id": payload.VehicleID})
	if err != nil {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
		return
	}
	if _, err := b.DDB.FindOne(ctx, bson.M{"_id": payload.DriverID}); err != nil {
		config.ErrorStatus("failed to get driver by ID", http.StatusNotFound, w, err)
		return
	}
	if vehicle.Status != models.VehicleStatusAvailable {
		config.ErrorStatus("vehicle is not available for booking", http.StatusConflict, w, fmt.Errorf("vehicle status is %s", vehicle.Status))
		return
	}

	booking := models.Booking{
		ID:           uuid.New().String(),
		VehicleID:    payload.VehicleID,
		DriverID:     payload.DriverID,
		FromLocation: payload.FromLocation,
		ToLocation:   payload.ToLocation,
		StartTime:    payload.StartTime,
		EndTime:      payload.EndTime,
		Status:       "pending",
		CreatedAt:    now,
	}

	if _, err := b.DB.InsertOne(ctx, booking); err != nil {
		config.ErrorStatus("failed to create booking", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(booking)
}

// BookingHandler returns all bookings
func (b Booking) BookingHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := b.DB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get bookings", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		config.ErrorStatus("no bookings found", http.StatusNotFound, w, nil)
		return
	}
	body, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// BookingByIDHandler returns a booking by ID
func (b Booking) BookingByIDHandler(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["booking_id"]

	zap.S().Debugf("booking_id: %v", bookingID)

	if bookingID == "" {
		config.ErrorStatus("booking_id is required", http.StatusBadRequest, w, errors.New("empty booking_id"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := b.DB.FindOne(ctx, bson.M{"_id": bookingID})
	if err != nil {
		config.ErrorStatus("failed to get booking by ID", http.StatusNotFound, w, err)
		return
	}

	body, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// BookingsByVehicleIDHandler returns all bookings that reference the given vehicle
func (b Booking) BookingsByVehicleIDHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]

	zap.S().Debugf("vehicle_id: '%v'", vehicleID)

	if vehicleID == "" {
		config.ErrorStatus("vehicle_id is required", http.StatusBadRequest, w, errors.New("empty vehicle_id"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := b.DB.Find(ctx, bson.M{"vehicleID": vehicleID})
	if err != nil {
		config.ErrorStatus("failed to get bookings by vehicle ID", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		config.ErrorStatus("no bookings found for vehicle", http.StatusNotFound, w, nil)
		return
	}
	body, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// BookingsByDriverIDHandler returns all bookings that reference the given driver
func (b Booking) BookingsByDriverIDHandler(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["driver_id"]

	zap.S().Debugf("driver_id: '%v'", driverID)

	if driverID == "" {
		config.ErrorStatus("driver_id is required", http.StatusBadRequest, w, errors.New("empty driver_id"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := b.DB.Find(ctx, bson.M{"driverID": driverID})
	if err != nil {
		config.ErrorStatus("failed to get bookings by driver ID", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		config.ErrorStatus("no bookings found for driver", http.StatusNotFound, w, nil)
		return
	}
	body, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
