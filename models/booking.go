package models

import "time"

// Booking holds the structure for the bookings collection. Vehicle and
// driver are referenced by id only; existence is checked at creation time
// and never re-validated afterwards.
type Booking struct {
	ID           string    `json:"_id" bson:"_id"`
	VehicleID    string    `json:"vehicleID" bson:"vehicleID"`
	DriverID     string    `json:"driverID" bson:"driverID"`
	FromLocation string    `json:"fromLocation" bson:"fromLocation"`
	ToLocation   string    `json:"toLocation" bson:"toLocation"`
	StartTime    time.Time `json:"startTime" bson:"startTime"`
	EndTime      time.Time `json:"endTime" bson:"endTime"`
	Status       string    `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// BookingPayload is the caller supplied input to create a booking
type BookingPayload struct {
	VehicleID    string    `json:"vehicleID"`
	DriverID     string    `json:"driverID"`
	FromLocation string    `json:"fromLocation"`
	ToLocation   string    `json:"toLocation"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
}
