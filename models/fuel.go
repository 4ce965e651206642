package models

import "time"

// FuelConsumption holds the structure for the fuel consumptions collection.
// Amount stays a decimal string on the wire and at rest; it must parse to a
// positive number at creation time.
type FuelConsumption struct {
	ID        string    `json:"_id" bson:"_id"`
	VehicleID string    `json:"vehicleID" bson:"vehicleID"`
	Amount    string    `json:"amount" bson:"amount"`
	Date      time.Time `json:"date" bson:"date"`
}

// FuelConsumptionPayload is the caller supplied input to record fuel consumption
type FuelConsumptionPayload struct {
	VehicleID string    `json:"vehicleID"`
	Amount    string    `json:"amount"`
	Date      time.Time `json:"date"`
}
