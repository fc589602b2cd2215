package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"waataxi/internal/handlers"
	"waataxi/internal/repositories"
	"waataxi/internal/rides/geo"
	"waataxi/internal/services"
)

type application struct {
	errorLog         *log.Logger
	infoLog          *log.Logger
	db               *sql.DB
	wsManager        *WebSocketManager
	userHandler      *handlers.UserHandler
	passengerHandler *handlers.PassengerHandler
	driverHandler    *handlers.DriverHandler
	rideHandler      *handlers.RideHandler
	rideService      *services.RideService
}

func initializeApp(db *sql.DB, rdb *redis.Client, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	passengerRepo := repositories.PassengerRepository{DB: db}
	driverRepo := repositories.DriverRepository{DB: db}
	rideRepo := repositories.RideRepository{DB: db}

	locator := geo.NewDriverLocator(rdb)
	wsManager := NewWebSocketManager()

	// Services
	userService := &services.UserService{UserRepo: &userRepo}
	passengerService := &services.PassengerService{PassengerRepo: &passengerRepo}
	driverService := &services.DriverService{DriverRepo: &driverRepo, Locator: locator, ErrorLog: errorLog}
	rideService := &services.RideService{
		Store:      &rideRepo,
		Passengers: &passengerRepo,
		Drivers:    &driverRepo,
		Notifier:   wsManager,
		Locator:    locator,
		ErrorLog:   errorLog,
	}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	passengerHandler := &handlers.PassengerHandler{Service: passengerService}
	driverHandler := &handlers.DriverHandler{Service: driverService}
	rideHandler := &handlers.RideHandler{Service: rideService}

	return &application{
		errorLog:         errorLog,
		infoLog:          infoLog,
		db:               db,
		wsManager:        wsManager,
		userHandler:      userHandler,
		passengerHandler: passengerHandler,
		driverHandler:    driverHandler,
		rideHandler:      rideHandler,
		rideService:      rideService,
	}
}

func openDB(driver, dsn string) (*sql.DB, error) {
	if driver == "" {
		driver = "pgx"
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
