package handlers

import (
	"net/http"

	"evcharge/internal/service"
)

// DashboardHandlers exposes the summary endpoint.
type DashboardHandlers struct {
	dashboard *service.DashboardService
}

// NewDashboardHandlers builds DashboardHandlers.
func NewDashboardHandlers(dashboard *service.DashboardService) *DashboardHandlers {
	return &DashboardHandlers{dashboard: dashboard}
}

// Summary handles GET /api/dashboard/summary. Failures stay generic; the
// service already logged the detail.
func (h *DashboardHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.GetSummary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load dashboard summary")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
