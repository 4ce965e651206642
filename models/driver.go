package models

import "time"

// Driver holds the structure for the drivers collection
type Driver struct {
	ID            string    `json:"_id" bson:"_id"`
	AccountID     string    `json:"accountID" bson:"accountID"`
	Name          string    `json:"name" bson:"name"`
	LicenseNumber string    `json:"licenseNumber" bson:"licenseNumber"`
	ContactInfo   string    `json:"contactInfo" bson:"contactInfo"`
	Points        int       `json:"points" bson:"points"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// DriverPayload is the caller supplied input to create a driver
type DriverPayload struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	ContactInfo   string `json:"contactInfo"`
}
