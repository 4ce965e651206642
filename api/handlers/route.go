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

// Placeholder values returned until a routing engine is wired in.
// TODO: replace with a real distance/time estimate once the dispatch team
// settles on a routing provider.
const (
	routeDistancePlaceholder = "120 km"
	routeTimePlaceholder     = "2 hours"
)

// Route exported for testing purposes
type Route struct {
	DB databases.RouteDatabase
}

// CreateRouteHandler creates a route. The optimized route, distance and
// time estimate are placeholder strings, not computed results.
func (rt Route) CreateRouteHandler(w http.ResponseWriter, r *http.Request) {
	var payload models.RoutePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if payload.FromLocation == "" || payload.ToLocation == "" {
		config.ErrorStatus("fromLocation and toLocation are required", http.StatusBadRequest, w, errors.New("missing required field"))
		return
	}

	route := models.Route{
		ID:             uuid.New().String(),
		FromLocation:   payload.FromLocation,
		ToLocation:     payload.ToLocation,
		OptimizedRoute: fmt.Sprintf("Optimized route from %s to %s", payload.FromLocation, payload.ToLocation),
		Distance:       routeDistancePlaceholder,
		EstimatedTime:  routeTimePlaceholder,
		CreatedAt:      time.Now(),
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := rt.DB.InsertOne(ctx, route); err != nil {
		config.ErrorStatus("failed to create route", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(route)
}

// RouteHandler returns all routes
func (rt Route) RouteHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := rt.DB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get routes", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		config.ErrorStatus("no routes found", http.StatusNotFound, w, nil)
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

// RouteByIDHandler returns a route by ID
func (rt Route) RouteByIDHandler(w http.ResponseWriter, r *http.Request) {
	routeID := mux.Vars(r)["route_id"]

	zap.S().Debugf("route_id: %v", routeID)

	if routeID == "" {
		config.ErrorStatus("route_id is required", http.StatusBadRequest, w, errors.New("empty route_id"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := rt.DB.FindOne(ctx, bson.M{"_id": routeID})
	if err != nil {
		config.ErrorStatus("failed to get route by ID", http.StatusNotFound, w, err)
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
