package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/musecoding/fleet-management-sytem/api"
	"github.com/musecoding/fleet-management-sytem/api/scheduler"
	"github.com/musecoding/fleet-management-sytem/config"
	"github.com/musecoding/fleet-management-sytem/databases"
	"github.com/musecoding/fleet-management-sytem/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewAccountDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	vehicleDB := databases.NewVehicleDatabase(a.dbHelper)
	driverDB := databases.NewDriverDatabase(a.dbHelper)

	d := Driver{DB: driverDB}
	v := Vehicle{DB: vehicleDB}
	b := Booking{DB: databases.NewBookingDatabase(a.dbHelper), VDB: vehicleDB, DDB: driverDB}
	f := FuelConsumption{DB: databases.NewFuelConsumptionDatabase(a.dbHelper), VDB: vehicleDB}
	mt := Maintenance{DB: databases.NewMaintenanceDatabase(a.dbHelper), VDB: vehicleDB}
	em := EmergencyAssistance{DB: databases.NewEmergencyAssistanceDatabase(a.dbHelper), VDB: vehicleDB}
	rt := Route{DB: databases.NewRouteDatabase(a.dbHelper)}
	acct := Auth{DB: databases.NewAccountDatabase(a.dbHelper)}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(30 * time.Second))

	apiCreate.Handle("/auth/register", http.HandlerFunc(acct.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/auth/login", http.HandlerFunc(acct.LoginHandler)).Methods("POST")
	apiCreate.Handle("/auth/token", http.HandlerFunc(m.CreateToken)).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/driver", api.Middleware(http.HandlerFunc(d.CreateDriverHandler))).Methods("POST")
	apiCreate.Handle("/driver/{driver_id}", api.Middleware(http.HandlerFunc(d.DriverByIDHandler))).Methods("GET")
	apiCreate.Handle("/driver/{driver_id}", api.Middleware(http.HandlerFunc(d.DeleteDriverHandler))).Methods("DELETE")
	apiCreate.Handle("/drivers", api.Middleware(http.HandlerFunc(d.DriverHandler))).Methods("GET")
	apiCreate.Handle("/drivers/me", api.Middleware(http.HandlerFunc(d.DriversByPrincipalHandler))).Methods("GET")
	apiCreate.Handle("/drivers/license/{license_number}", api.Middleware(http.HandlerFunc(d.DriversByLicenseNumberHandler))).Methods("GET")

	apiCreate.Handle("/vehicle", api.Middleware(http.HandlerFunc(v.CreateVehicleHandler))).Methods("POST")
	apiCreate.Handle("/vehicle/{vehicle_id}", api.Middleware(http.HandlerFunc(v.VehicleByIDHandler))).Methods("GET")
	apiCreate.Handle("/vehicle/{vehicle_id}", api.Middleware(http.HandlerFunc(v.DeleteVehicleHandler))).Methods("DELETE")
	apiCreate.Handle("/vehicle/{vehicle_id}/status", api.Middleware(http.HandlerFunc(v.UpdateVehicleStatusHandler))).Methods("PUT")
	apiCreate.Handle("/vehicles", api.Middleware(http.HandlerFunc(v.VehicleHandler))).Methods("GET")
	apiCreate.Handle("/vehicles/registration/{registration_number}", api.Middleware(http.HandlerFunc(v.VehiclesByRegistrationNumberHandler))).Methods("GET")
	apiCreate.Handle("/vehicles/model/{model}", api.Middleware(http.HandlerFunc(v.VehiclesByModelHandler))).Methods("GET")

	apiCreate.Handle("/booking", api.Middleware(http.HandlerFunc(b.CreateBookingHandler))).Methods("POST")
	apiCreate.Handle("/booking/{booking_id}", api.Middleware(http.HandlerFunc(b.BookingByIDHandler))).Methods("GET")
	apiCreate.Handle("/bookings", api.Middleware(http.HandlerFunc(b.BookingHandler))).Methods("GET")
	apiCreate.Handle("/bookings/vehicle/{vehicle_id}", api.Middleware(http.HandlerFunc(b.BookingsByVehicleIDHandler))).Methods("GET")
	apiCreate.Handle("/bookings/driver/{driver_id}", api.Middleware(http.HandlerFunc(b.BookingsByDriverIDHandler))).Methods("GET")

	apiCreate.Handle("/fuel", api.Middleware(http.HandlerFunc(f.RecordFuelConsumptionHandler))).Methods("POST")
	apiCreate.Handle("/fuels", api.Middleware(http.HandlerFunc(f.FuelConsumptionHandler))).Methods("GET")

	apiCreate.Handle("/maintenance", api.Middleware(http.HandlerFunc(mt.ScheduleMaintenanceHandler))).Methods("POST")
	apiCreate.Handle("/maintenances", api.Middleware(http.HandlerFunc(mt.MaintenanceHandler))).Methods("GET")

	apiCreate.Handle("/emergency", api.Middleware(http.HandlerFunc(em.RequestEmergencyAssistanceHandler))).Methods("POST")
	apiCreate.Handle("/emergencies", api.Middleware(http.HandlerFunc(em.EmergencyAssistanceHandler))).Methods("GET")

	apiCreate.Handle("/route", api.Middleware(http.HandlerFunc(rt.CreateRouteHandler))).Methods("POST")
	apiCreate.Handle("/route/{route_id}", api.Middleware(http.HandlerFunc(rt.RouteByIDHandler))).Methods("GET")
	apiCreate.Handle("/routes", api.Middleware(http.HandlerFunc(rt.RouteHandler))).Methods("GET")

	r.HandleFunc("/ws/alerts", HandleAlertsWebSocket)

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("fleet-management-api has connected to the database")

	a.Scheduler = scheduler.NewScheduler(
		&a.Config,
		databases.NewMaintenanceDatabase(a.dbHelper),
		databases.NewEmergencyAssistanceDatabase(a.dbHelper),
	)
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
