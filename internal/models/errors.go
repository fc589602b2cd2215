package models

import (
	"errors"
)

var (
	ErrNoRecord          = errors.New("models: no matching record found")
	ErrUserNotFound      = errors.New("models: user not found")
	ErrPassengerNotFound = errors.New("models: passenger not found")
	ErrDriverNotFound    = errors.New("models: driver not found")
	ErrRideNotFound      = errors.New("models: ride not found")
	ErrDuplicatePhone    = errors.New("models: duplicate phone number")
	ErrDuplicateDriver   = errors.New("models: driver already exists for this user")
	ErrInvalidStatus     = errors.New("models: operation not allowed for current ride status")
	ErrDriverUnavailable = errors.New("models: driver is not available")
	ErrDriverBusy        = errors.New("models: driver already has an active ride")
	ErrDriverMismatch    = errors.New("models: ride is not assigned to this driver")
	ErrInvalidInput      = errors.New("models: invalid input")
)
