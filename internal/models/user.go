package models

import (
	"time"
)

const (
	RolePassenger = "passenger"
	RoleDriver    = "driver"
	RoleAdmin     = "admin"
)

type User struct {
	ID        string     `json:"id"`
	Phone     string     `json:"phone"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CreateUserRequest carries registration input. The name fields end up on
// the passenger or driver profile created alongside the user row.
type CreateUserRequest struct {
	Phone         string  `json:"phone"`
	Role          string  `json:"role"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	LicenseNumber *string `json:"license_number,omitempty"`
}

// UpdateUserRequest carries a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
