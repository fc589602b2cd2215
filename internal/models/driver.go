package models

import (
	"strings"
	"time"
)

type Driver struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	LicenseNumber string     `json:"license_number"`
	IsAvailable   bool       `json:"is_available"`
	AvatarURL     *string    `json:"avatar_url,omitempty"`
	LastLat       *float64   `json:"last_lat,omitempty"`
	LastLon       *float64   `json:"last_lon,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// DriverProfile is the read-time projection attached to rides for display.
// It is computed on demand and never stored.
type DriverProfile struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
}

func (d Driver) Profile() DriverProfile {
	return DriverProfile{
		ID:     d.ID,
		Name:   strings.TrimSpace(d.FirstName + " " + d.LastName),
		Avatar: d.AvatarURL,
	}
}

// NearbyDriver pairs a driver with its distance from a query point.
type NearbyDriver struct {
	Driver         Driver  `json:"driver"`
	DistanceMeters float64 `json:"distance_meters"`
}

type UpdateDriverLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
