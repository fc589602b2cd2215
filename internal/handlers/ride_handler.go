package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"waataxi/internal/models"
	"waataxi/internal/services"
)

type RideHandler struct {
	Service *services.RideService
}

func (h *RideHandler) CreateRide(w http.ResponseWriter, r *http.Request) {
	var input models.RideInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	ride, err := h.Service.CreateRide(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ride)
}

func (h *RideHandler) GetPendingRides(w http.ResponseWriter, r *http.Request) {
	rides, err := h.Service.ListPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(rides)
}

type assignRequest struct {
	RideID   string `json:"ride_id"`
	DriverID string `json:"driver_id"`
}

func (h *RideHandler) AssignDriver(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if req.RideID == "" || req.DriverID == "" {
		http.Error(w, "ride_id and driver_id are required", http.StatusBadRequest)
		return
	}
	ride, err := h.Service.AssignDriver(r.Context(), req.RideID, req.DriverID)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(ride)
}

func (h *RideHandler) StartRide(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	ride, err := h.Service.StartRide(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(ride)
}

func (h *RideHandler) CompleteRide(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	ride, err := h.Service.CompleteRide(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(ride)
}

// CancelRide accepts an optional body { "reason": "cancelled" |
// "timeout_cancelled" }; an absent body means cancelled.
func (h *RideHandler) CancelRide(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	var req struct {
		Reason string `json:"reason"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	ride, err := h.Service.CancelRide(r.Context(), id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(ride)
}

type rejectRequest struct {
	RideID   string `json:"ride_id"`
	DriverID string `json:"driver_id"`
}

func (h *RideHandler) RejectRide(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if req.RideID == "" || req.DriverID == "" {
		http.Error(w, "ride_id and driver_id are required", http.StatusBadRequest)
		return
	}
	ride, err := h.Service.RejectRide(r.Context(), req.RideID, req.DriverID)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(ride)
}

func (h *RideHandler) GetRideByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	ride, err := h.Service.GetRideByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(ride)
}

func (h *RideHandler) GetRidesByUser(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	rides, err := h.Service.GetRidesByUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(rides)
}

func (h *RideHandler) GetRidesByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get(":status")
	rides, err := h.Service.GetRidesByStatus(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(rides)
}

func (h *RideHandler) GetRidesByDriver(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	rides, err := h.Service.GetRidesByDriver(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(rides)
}

func (h *RideHandler) GetRidesByPassenger(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	rides, err := h.Service.GetRidesByPassenger(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(rides)
}

func (h *RideHandler) GetRecentAddresses(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	addresses, err := h.Service.RecentAddresses(r.Context(), id, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(addresses)
}
