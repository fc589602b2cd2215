package handlers

import (
	"errors"
	"net/http"

	"waataxi/internal/models"
)

// statusForError maps service errors to stable HTTP status codes so clients
// can branch on them.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNoRecord),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrPassengerNotFound),
		errors.Is(err, models.ErrDriverNotFound),
		errors.Is(err, models.ErrRideNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrDriverUnavailable),
		errors.Is(err, models.ErrDriverBusy),
		errors.Is(err, models.ErrDuplicatePhone),
		errors.Is(err, models.ErrDuplicateDriver):
		return http.StatusConflict
	case errors.Is(err, models.ErrDriverMismatch):
		return http.StatusForbidden
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
