package handlers

import (
	"encoding/json"
	"net/http"

	"evcharge/internal/service"
)

// OwnerHandlers exposes EV-owner endpoints keyed by NIC.
type OwnerHandlers struct {
	owners *service.OwnerService
}

// NewOwnerHandlers builds OwnerHandlers.
func NewOwnerHandlers(owners *service.OwnerService) *OwnerHandlers {
	return &OwnerHandlers{owners: owners}
}

type ownerRequest struct {
	NIC            string `json:"nic"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	VehicleDetails string `json:"vehicleDetails"`
}

func (req ownerRequest) toInput() service.OwnerInput {
	return service.OwnerInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		VehicleDetails: req.VehicleDetails,
	}
}

// List handles GET /api/owners.
func (h *OwnerHandlers) List(w http.ResponseWriter, r *http.Request) {
	owners, err := h.owners.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, owners)
}

// Get handles GET /api/owners/{nic}.
func (h *OwnerHandlers) Get(w http.ResponseWriter, r *http.Request) {
	owner, err := h.owners.GetByNIC(r.Context(), r.PathValue("nic"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, owner)
}

// Create handles POST /api/owners.
func (h *OwnerHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	owner, err := h.owners.Create(r.Context(), req.NIC, req.toInput())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, owner)
}

// Update handles PUT /api/owners/{nic}.
func (h *OwnerHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.owners.Update(r.Context(), r.PathValue("nic"), req.toInput()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Activate handles POST /api/owners/{nic}/activate.
func (h *OwnerHandlers) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.owners.Activate(r.Context(), r.PathValue("nic")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Deactivate handles POST /api/owners/{nic}/deactivate.
func (h *OwnerHandlers) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.owners.Deactivate(r.Context(), r.PathValue("nic")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Delete handles DELETE /api/owners/{nic}.
func (h *OwnerHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.owners.Delete(r.Context(), r.PathValue("nic")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
