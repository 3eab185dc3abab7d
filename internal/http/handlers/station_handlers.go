package handlers

import (
	"encoding/json"
	"net/http"

	"evcharge/internal/models"
	"evcharge/internal/service"
)

// StationHandlers exposes charging-station endpoints.
type StationHandlers struct {
	stations *service.StationService
}

// NewStationHandlers builds StationHandlers.
func NewStationHandlers(stations *service.StationService) *StationHandlers {
	return &StationHandlers{stations: stations}
}

type stationRequest struct {
	Location       string   `json:"location"`
	Type           string   `json:"type"`
	SlotsAvailable int      `json:"slotsAvailable"`
	Schedule       []string `json:"schedule"`
}

func (req stationRequest) toInput() service.StationInput {
	return service.StationInput{
		Location:       req.Location,
		Type:           models.StationType(req.Type),
		SlotsAvailable: req.SlotsAvailable,
		Schedule:       req.Schedule,
	}
}

// List handles GET /api/stations.
func (h *StationHandlers) List(w http.ResponseWriter, r *http.Request) {
	stations, err := h.stations.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stations)
}

// Get handles GET /api/stations/{id}.
func (h *StationHandlers) Get(w http.ResponseWriter, r *http.Request) {
	station, err := h.stations.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, station)
}

// Create handles POST /api/stations.
func (h *StationHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req stationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	station, err := h.stations.Create(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, station)
}

// Update handles PUT /api/stations/{id}.
func (h *StationHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req stationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.stations.Update(r.Context(), r.PathValue("id"), req.toInput()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// UpdateSchedule handles POST /api/stations/{id}/schedule.
func (h *StationHandlers) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Schedule []string `json:"schedule"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.stations.UpdateSchedule(r.Context(), r.PathValue("id"), req.Schedule); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Activate handles POST /api/stations/{id}/activate.
func (h *StationHandlers) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.stations.Activate(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Deactivate handles POST /api/stations/{id}/deactivate.
func (h *StationHandlers) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.stations.Deactivate(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Delete handles DELETE /api/stations/{id}.
func (h *StationHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.stations.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
