package httpserver

import (
	"net/http"

	"evcharge/internal/authz"
	"evcharge/internal/http/handlers"
	"evcharge/internal/http/middleware"
)

// RouterDeps collects handler dependencies.
type RouterDeps struct {
	Auth      *handlers.AuthHandlers
	Users     *handlers.UserHandlers
	Owners    *handlers.OwnerHandlers
	Stations  *handlers.StationHandlers
	Bookings  *handlers.BookingHandlers
	Dashboard *handlers.DashboardHandlers
	Health    http.HandlerFunc
	Metrics   http.Handler
}

// NewRouter wires HTTP routes. Every route passes the authentication
// middleware; protected routes additionally consult the access policy for
// their operation before the handler runs.
func NewRouter(deps RouterDeps, authenticate, observe func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	guard := func(op authz.Operation, handler http.HandlerFunc) http.Handler {
		return middleware.Require(op)(handler)
	}

	mux.HandleFunc("GET /health", deps.Health)
	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics)
	}

	mux.HandleFunc("POST /api/auth/login", deps.Auth.Login)
	mux.HandleFunc("POST /api/auth/logout", deps.Auth.Logout)

	mux.Handle("GET /api/users", guard(authz.OpUserList, deps.Users.List))
	mux.Handle("POST /api/users", guard(authz.OpUserCreate, deps.Users.Create))
	mux.Handle("GET /api/users/{id}", guard(authz.OpUserGet, deps.Users.Get))
	mux.Handle("PUT /api/users/{id}", guard(authz.OpUserUpdate, deps.Users.Update))
	mux.Handle("DELETE /api/users/{id}", guard(authz.OpUserDelete, deps.Users.Delete))

	mux.Handle("GET /api/owners", guard(authz.OpOwnerList, deps.Owners.List))
	mux.Handle("POST /api/owners", guard(authz.OpOwnerCreate, deps.Owners.Create))
	mux.Handle("GET /api/owners/{nic}", guard(authz.OpOwnerGet, deps.Owners.Get))
	mux.Handle("PUT /api/owners/{nic}", guard(authz.OpOwnerUpdate, deps.Owners.Update))
	mux.Handle("DELETE /api/owners/{nic}", guard(authz.OpOwnerDelete, deps.Owners.Delete))
	mux.Handle("POST /api/owners/{nic}/activate", guard(authz.OpOwnerActivate, deps.Owners.Activate))
	mux.Handle("POST /api/owners/{nic}/deactivate", guard(authz.OpOwnerDeactivate, deps.Owners.Deactivate))

	mux.Handle("GET /api/stations", guard(authz.OpStationList, deps.Stations.List))
	mux.Handle("POST /api/stations", guard(authz.OpStationCreate, deps.Stations.Create))
	mux.Handle("GET /api/stations/{id}", guard(authz.OpStationGet, deps.Stations.Get))
	mux.Handle("PUT /api/stations/{id}", guard(authz.OpStationUpdate, deps.Stations.Update))
	mux.Handle("DELETE /api/stations/{id}", guard(authz.OpStationDelete, deps.Stations.Delete))
	mux.Handle("POST /api/stations/{id}/activate", guard(authz.OpStationActivate, deps.Stations.Activate))
	mux.Handle("POST /api/stations/{id}/deactivate", guard(authz.OpStationDeactivate, deps.Stations.Deactivate))
	mux.Handle("POST /api/stations/{id}/schedule", guard(authz.OpStationUpdateSchedule, deps.Stations.UpdateSchedule))

	mux.Handle("GET /api/bookings", guard(authz.OpBookingList, deps.Bookings.List))
	mux.Handle("POST /api/bookings", guard(authz.OpBookingCreate, deps.Bookings.Create))
	mux.Handle("GET /api/bookings/{id}", guard(authz.OpBookingGet, deps.Bookings.Get))
	mux.Handle("PUT /api/bookings/{id}", guard(authz.OpBookingUpdate, deps.Bookings.Update))
	mux.Handle("POST /api/bookings/{id}/cancel", guard(authz.OpBookingCancel, deps.Bookings.Cancel))
	mux.Handle("POST /api/bookings/{id}/complete", guard(authz.OpBookingComplete, deps.Bookings.Complete))
	mux.Handle("GET /api/bookings/owner/{nic}", guard(authz.OpBookingListByOwner, deps.Bookings.ListByOwner))
	mux.Handle("GET /api/bookings/station/{id}", guard(authz.OpBookingListByStation, deps.Bookings.ListByStation))

	mux.Handle("GET /api/dashboard/summary", guard(authz.OpDashboardSummary, deps.Dashboard.Summary))

	// Observe sits inside authentication: the mux stamps the matched pattern
	// on the request it receives, which is the one Observe passed down.
	var handler http.Handler = mux
	if observe != nil {
		handler = observe(handler)
	}
	if authenticate != nil {
		handler = authenticate(handler)
	}
	return handler
}
