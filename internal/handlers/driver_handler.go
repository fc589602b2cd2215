package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"waataxi/internal/models"
	"waataxi/internal/services"
)

type DriverHandler struct {
	Service *services.DriverService
}

func (h *DriverHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var driver models.Driver
	if err := json.NewDecoder(r.Body).Decode(&driver); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateDriver(r.Context(), driver)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *DriverHandler) GetDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.Service.GetDrivers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(drivers)
}

func (h *DriverHandler) GetAvailableDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.Service.GetAvailableDrivers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(drivers)
}

func (h *DriverHandler) GetNearbyDrivers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		http.Error(w, "lon is required", http.StatusBadRequest)
		return
	}
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		http.Error(w, "lat is required", http.StatusBadRequest)
		return
	}
	radius, _ := strconv.ParseFloat(q.Get("radius"), 64)
	limit, _ := strconv.Atoi(q.Get("limit"))

	drivers, err := h.Service.NearbyDrivers(r.Context(), lon, lat, radius, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(drivers)
}

func (h *DriverHandler) GetDriverByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	driver, err := h.Service.GetDriverByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(driver)
}

func (h *DriverHandler) UpdateDriverLocation(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	var req models.UpdateDriverLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	driver, err := h.Service.UpdateDriverLocation(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(driver)
}
