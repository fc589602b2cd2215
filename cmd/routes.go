package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)

	mux := pat.New()

	// Users
	mux.Post("/api/users", standardMiddleware.ThenFunc(app.userHandler.CreateUser))
	mux.Get("/api/users", standardMiddleware.ThenFunc(app.userHandler.GetUsers))
	mux.Get("/api/users/phone/:phone", standardMiddleware.ThenFunc(app.userHandler.GetUserByPhone))
	mux.Post("/api/users/:id/deactivate", standardMiddleware.ThenFunc(app.userHandler.DeactivateUser))
	mux.Get("/api/users/:id", standardMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/api/users/:id", standardMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Del("/api/users/:id", standardMiddleware.ThenFunc(app.userHandler.DeleteUser))

	// Passengers
	mux.Post("/api/passengers", standardMiddleware.ThenFunc(app.passengerHandler.CreatePassenger))
	mux.Get("/api/passengers", standardMiddleware.ThenFunc(app.passengerHandler.GetPassengers))
	mux.Get("/api/passengers/user/:id", standardMiddleware.ThenFunc(app.passengerHandler.GetPassengerByUserID))
	mux.Get("/api/passengers/:id", standardMiddleware.ThenFunc(app.passengerHandler.GetPassengerByID))

	// Drivers
	mux.Post("/api/drivers", standardMiddleware.ThenFunc(app.driverHandler.CreateDriver))
	mux.Get("/api/drivers", standardMiddleware.ThenFunc(app.driverHandler.GetDrivers))
	mux.Get("/api/drivers/available", standardMiddleware.ThenFunc(app.driverHandler.GetAvailableDrivers))
	mux.Get("/api/drivers/nearby", standardMiddleware.ThenFunc(app.driverHandler.GetNearbyDrivers))
	mux.Put("/api/drivers/:id/location", standardMiddleware.ThenFunc(app.driverHandler.UpdateDriverLocation))
	mux.Get("/api/drivers/:id", standardMiddleware.ThenFunc(app.driverHandler.GetDriverByID))

	// Rides
	mux.Post("/api/rides", standardMiddleware.ThenFunc(app.rideHandler.CreateRide))
	mux.Get("/api/rides/pending", standardMiddleware.ThenFunc(app.rideHandler.GetPendingRides))
	mux.Post("/api/rides/assign", standardMiddleware.ThenFunc(app.rideHandler.AssignDriver))
	mux.Post("/api/rides/start/:id", standardMiddleware.ThenFunc(app.rideHandler.StartRide))
	mux.Post("/api/rides/complete/:id", standardMiddleware.ThenFunc(app.rideHandler.CompleteRide))
	mux.Post("/api/rides/cancel/:id", standardMiddleware.ThenFunc(app.rideHandler.CancelRide))
	mux.Post("/api/rides/reject", standardMiddleware.ThenFunc(app.rideHandler.RejectRide))
	mux.Get("/api/rides/user/:id", standardMiddleware.ThenFunc(app.rideHandler.GetRidesByUser))
	mux.Get("/api/rides/driver/:id", standardMiddleware.ThenFunc(app.rideHandler.GetRidesByDriver))
	mux.Get("/api/rides/passenger/:id/recent-addresses", standardMiddleware.ThenFunc(app.rideHandler.GetRecentAddresses))
	mux.Get("/api/rides/passenger/:id", standardMiddleware.ThenFunc(app.rideHandler.GetRidesByPassenger))
	mux.Get("/api/rides/status/:status", standardMiddleware.ThenFunc(app.rideHandler.GetRidesByStatus))
	mux.Get("/api/rides/:id", standardMiddleware.ThenFunc(app.rideHandler.GetRideByID))

	// Ride status feed
	mux.Get("/ws", standardMiddleware.ThenFunc(app.WebSocketHandler))

	return standardMiddleware.Then(mux)
}
