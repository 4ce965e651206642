package models

import "time"

// Route holds the structure for the routes collection. OptimizedRoute,
// Distance and EstimatedTime are placeholder values, no routing engine
// sits behind them.
type Route struct {
	ID             string    `json:"_id" bson:"_id"`
	FromLocation   string    `json:"fromLocation" bson:"fromLocation"`
	ToLocation     string    `json:"toLocation" bson:"toLocation"`
	OptimizedRoute string    `json:"optimizedRoute" bson:"optimizedRoute"`
	Distance       string    `json:"distance" bson:"distance"`
	EstimatedTime  string    `json:"estimatedTime" bson:"estimatedTime"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// RoutePayload is the caller supplied input to create a route
type RoutePayload struct {
	FromLocation string `json:"fromLocation"`
	ToLocation   string `json:"toLocation"`
}
