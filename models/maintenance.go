package models

import "time"

// Maintenance holds the structure for the maintenances collection
type Maintenance struct {
	ID            string    `json:"_id" bson:"_id"`
	VehicleID     string    `json:"vehicleID" bson:"vehicleID"`
	Description   string    `json:"description" bson:"description"`
	ScheduledDate time.Time `json:"scheduledDate" bson:"scheduledDate"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// MaintenancePayload is the caller supplied input to schedule maintenance
type MaintenancePayload struct {
	VehicleID     string    `json:"vehicleID"`
	Description   string    `json:"description"`
	ScheduledDate time.Time `json:"scheduledDate"`
}
