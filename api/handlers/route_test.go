package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/musecoding/fleet-management-sytem/api/handlers"
	"github.com/musecoding/fleet-management-sytem/databases"
	"github.com/musecoding/fleet-management-sytem/databases/mocks"
	"github.com/musecoding/fleet-management-sytem/models"
)

func TestRoute_CreateRouteHandler(t *testing.T) {
	body := []byte(`{"fromLocation": "Bangalore", "toLocation": "Chennai"}`)
	req, err := http.NewRequest("POST", "/api/v1/route", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	routeConn := &mocks.CollectionHelper{}

	routeConn.On("InsertOne", mock.Anything, mock.Anything).Return(nil, nil)
	db.On("Collection", "routes").Return(routeConn)

	rt := handlers.Route{DB: databases.NewRouteDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(rt.CreateRouteHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.Route
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Optimized route from Bangalore to Chennai", created.OptimizedRoute)
	assert.Equal(t, "120 km", created.Distance)
	assert.Equal(t, "2 hours", created.EstimatedTime)
}

func TestRoute_CreateRouteHandlerMissingFields(t *testing.T) {
	body := []byte(`{"fromLocation": "Bangalore"}`)
	req, err := http.NewRequest("POST", "/api/v1/route", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	rt := handlers.Route{DB: databases.NewRouteDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(rt.CreateRouteHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.StatusInvalidPayload, decodeStatus(t, rr).Status)
}

func TestRoute_RouteByIDHandlerNotFound(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/route/missing", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"route_id": "missing"})

	db := &MockDatabaseHelper{}
	routeConn := &mocks.CollectionHelper{}
	routeResult := &mocks.SingleResultHelper{}

	routeResult.On("Decode", mock.Anything).Return(errors.New("mongo: no documents in result"))
	routeConn.On("FindOne", mock.Anything, mock.Anything).Return(routeResult)
	db.On("Collection", "routes").Return(routeConn)

	rt := handlers.Route{DB: databases.NewRouteDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(rt.RouteByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, models.StatusNotFound, decodeStatus(t, rr).Status)
}

func TestRoute_RouteHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/routes", nil)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	routeConn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Route)
		*arg = []models.Route{{ID: "route-1"}, {ID: "route-2"}}
	})
	routeConn.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursorHelper)
	db.On("Collection", "routes").Return(routeConn)

	rt := handlers.Route{DB: databases.NewRouteDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(rt.RouteHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.Route
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, got, 2)
}
