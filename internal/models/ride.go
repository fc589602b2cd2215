package models

import (
	"time"
)

type Ride struct {
	ID                string     `json:"id"`
	PassengerID       *string    `json:"passenger_id,omitempty"`
	DriverID          *string    `json:"driver_id,omitempty"`
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	OriginLabel       *string    `json:"origin_label,omitempty"`
	DestinationLabel  *string    `json:"destination_label,omitempty"`
	OriginLngLat      *string    `json:"origin_lng_lat,omitempty"`
	DestinationLngLat *string    `json:"destination_lng_lat,omitempty"`
	DistanceMeters    *int       `json:"distance_meters,omitempty"`
	DurationSeconds   *int       `json:"duration_seconds,omitempty"`
	DistanceKm        float64    `json:"distance_km"`
	EstimatedFare     int        `json:"estimated_fare"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`

	// Driver is a read-time projection, populated from the drivers table
	// when the ride is bound to one. Never persisted on the rides row.
	Driver *DriverProfile `json:"driver,omitempty"`
}

// RideInput mirrors the ride creation payload. PassengerID tolerates both
// passenger ids and user (account) ids.
type RideInput struct {
	PassengerID       *string  `json:"passenger_id,omitempty"`
	DriverID          *string  `json:"driver_id,omitempty"`
	Origin            string   `json:"origin"`
	Destination       string   `json:"destination"`
	DistanceKm        float64  `json:"distance_km"`
	OriginLabel       *string  `json:"origin_label,omitempty"`
	DestinationLabel  *string  `json:"destination_label,omitempty"`
	OriginLngLat      *string  `json:"origin_lng_lat,omitempty"`
	DestinationLngLat *string  `json:"destination_lng_lat,omitempty"`
	DistanceMeters    *int     `json:"distance_meters,omitempty"`
	DurationSeconds   *int     `json:"duration_seconds,omitempty"`
}

// RideEvent is pushed to websocket subscribers on status transitions.
type RideEvent struct {
	Type string `json:"type"`
	Ride Ride   `json:"ride"`
}
