package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/musecoding/fleet-management-sytem/api/handlers"
	"github.com/musecoding/fleet-management-sytem/databases"
	"github.com/musecoding/fleet-management-sytem/databases/mocks"
	"github.com/musecoding/fleet-management-sytem/models"
)

func maintenancePayloadBody(scheduled time.Time) []byte {
	return []byte(fmt.Sprintf(`{"vehicleID": "vehicle-1", "description": "oil change", "scheduledDate": %q}`,
		scheduled.Format(time.RFC3339)))
}

func TestMaintenance_ScheduleMaintenanceHandler(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/maintenance", bytes.NewBuffer(maintenancePayloadBody(time.Now().Add(48*time.Hour))))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	vehicleConn := &mocks.CollectionHelper{}
	maintenanceConn := &mocks.CollectionHelper{}
	vehicleResult := &mocks.SingleResultHelper{}

	vehicleResult.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Vehicle)
		(*arg).ID = "vehicle-1"
	})
	vehicleConn.On("FindOne", mock.Anything, mock.Anything).Return(vehicleResult)
	maintenanceConn.On("InsertOne", mock.Anything, mock.Anything).Return(nil, nil)
	db.On("Collection", "vehicles").Return(vehicleConn)
	db.On("Collection", "maintenances").Return(maintenanceConn)

	m := handlers.Maintenance{
		DB:  databases.NewMaintenanceDatabase(db),
		VDB: databases.NewVehicleDatabase(db),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(m.ScheduleMaintenanceHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.Maintenance
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "pending", created.Status)
}

func TestMaintenance_ScheduleMaintenanceHandlerDateInPast(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/maintenance", bytes.NewBuffer(maintenancePayloadBody(time.Now().Add(-time.Hour))))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	m := handlers.Maintenance{
		DB:  databases.NewMaintenanceDatabase(db),
		VDB: databases.NewVehicleDatabase(db),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(m.ScheduleMaintenanceHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.StatusInvalidPayload, decodeStatus(t, rr).Status)
}

func TestMaintenance_ScheduleMaintenanceHandlerMissingDescription(t *testing.T) {
	body := []byte(fmt.Sprintf(`{"vehicleID": "vehicle-1", "scheduledDate": %q}`, time.Now().Add(48*time.Hour).Format(time.RFC3339)))
	req, err := http.NewRequest("POST", "/api/v1/maintenance", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	m := handlers.Maintenance{
		DB:  databases.NewMaintenanceDatabase(db),
		VDB: databases.NewVehicleDatabase(db),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(m.ScheduleMaintenanceHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.StatusInvalidPayload, decodeStatus(t, rr).Status)
}

func TestMaintenance_MaintenanceHandlerEmpty(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/maintenances", nil)
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	maintenanceConn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Maintenance)
		*arg = nil
	})
	maintenanceConn.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursorHelper)
	db.On("Collection", "maintenances").Return(maintenanceConn)

	m := handlers.Maintenance{DB: databases.NewMaintenanceDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(m.MaintenanceHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, models.StatusNotFound, decodeStatus(t, rr).Status)
}
