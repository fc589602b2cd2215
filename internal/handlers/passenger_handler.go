package handlers

import (
	"encoding/json"
	"net/http"

	"waataxi/internal/models"
	"waataxi/internal/services"
)

type PassengerHandler struct {
	Service *services.PassengerService
}

func (h *PassengerHandler) CreatePassenger(w http.ResponseWriter, r *http.Request) {
	var passenger models.Passenger
	if err := json.NewDecoder(r.Body).Decode(&passenger); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreatePassenger(r.Context(), passenger)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *PassengerHandler) GetPassengers(w http.ResponseWriter, r *http.Request) {
	passengers, err := h.Service.GetPassengers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(passengers)
}

func (h *PassengerHandler) GetPassengerByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	passenger, err := h.Service.GetPassengerByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(passenger)
}

func (h *PassengerHandler) GetPassengerByUserID(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":id")
	passenger, err := h.Service.GetPassengerByUserID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(passenger)
}
