package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"evcharge/internal/service"
)

// BookingHandlers exposes the booking lifecycle endpoints.
type BookingHandlers struct {
	bookings *service.BookingService
}

// NewBookingHandlers builds BookingHandlers.
func NewBookingHandlers(bookings *service.BookingService) *BookingHandlers {
	return &BookingHandlers{bookings: bookings}
}

type bookingRequest struct {
	OwnerNIC        string    `json:"ownerNIC"`
	StationID       string    `json:"stationId"`
	ReservationTime time.Time `json:"reservationTime"`
}

// List handles GET /api/bookings.
func (h *BookingHandlers) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// Get handles GET /api/bookings/{id}.
func (h *BookingHandlers) Get(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookings.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// ListByOwner handles GET /api/bookings/owner/{nic}.
func (h *BookingHandlers) ListByOwner(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.GetByOwner(r.Context(), r.PathValue("nic"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// ListByStation handles GET /api/bookings/station/{id}.
func (h *BookingHandlers) ListByStation(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.GetByStation(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// Create handles POST /api/bookings.
func (h *BookingHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	booking, err := h.bookings.Create(r.Context(), service.CreateBookingInput{
		OwnerNIC:        req.OwnerNIC,
		StationID:       req.StationID,
		ReservationTime: req.ReservationTime,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

// Update handles PUT /api/bookings/{id}.
func (h *BookingHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := h.bookings.Update(r.Context(), r.PathValue("id"), service.UpdateBookingInput{
		StationID:       req.StationID,
		ReservationTime: req.ReservationTime,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Cancel handles POST /api/bookings/{id}/cancel.
func (h *BookingHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.bookings.Cancel(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Complete handles POST /api/bookings/{id}/complete.
func (h *BookingHandlers) Complete(w http.ResponseWriter, r *http.Request) {
	if err := h.bookings.Complete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
