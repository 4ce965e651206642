package models

import "time"

// EmergencyAssistance holds the structure for the emergency assistance collection
type EmergencyAssistance struct {
	ID          string    `json:"_id" bson:"_id"`
	VehicleID   string    `json:"vehicleID" bson:"vehicleID"`
	Description string    `json:"description" bson:"description"`
	Location    string    `json:"location" bson:"location"`
	Status      string    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// EmergencyAssistancePayload is the caller supplied input to request emergency assistance
type EmergencyAssistancePayload struct {
	VehicleID   string `json:"vehicleID"`
	Description string `json:"description"`
	Location    string `json:"location"`
}
