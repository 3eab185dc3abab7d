// Package authz holds the declarative access policy: one table mapping
// (role, operation) to a permit decision, evaluated at the HTTP boundary
// before any service call runs.
package authz

import "evcharge/internal/models"

// Operation names a protected service operation.
type Operation string

// Protected operations.
const (
	OpBookingList          Operation = "booking.list"
	OpBookingGet           Operation = "booking.get"
	OpBookingCreate        Operation = "booking.create"
	OpBookingUpdate        Operation = "booking.update"
	OpBookingCancel        Operation = "booking.cancel"
	OpBookingComplete      Operation = "booking.complete"
	OpBookingListByOwner   Operation = "booking.list_by_owner"
	OpBookingListByStation Operation = "booking.list_by_station"

	OpStationList           Operation = "station.list"
	OpStationGet            Operation = "station.get"
	OpStationCreate         Operation = "station.create"
	OpStationUpdate         Operation = "station.update"
	OpStationDelete         Operation = "station.delete"
	OpStationActivate       Operation = "station.activate"
	OpStationDeactivate     Operation = "station.deactivate"
	OpStationUpdateSchedule Operation = "station.update_schedule"

	OpOwnerList       Operation = "owner.list"
	OpOwnerGet        Operation = "owner.get"
	OpOwnerCreate     Operation = "owner.create"
	OpOwnerUpdate     Operation = "owner.update"
	OpOwnerDelete     Operation = "owner.delete"
	OpOwnerActivate   Operation = "owner.activate"
	OpOwnerDeactivate Operation = "owner.deactivate"

	OpUserList   Operation = "user.list"
	OpUserGet    Operation = "user.get"
	OpUserCreate Operation = "user.create"
	OpUserUpdate Operation = "user.update"
	OpUserDelete Operation = "user.delete"

	OpDashboardSummary Operation = "dashboard.summary"
)

// RoleAnonymous represents an unauthenticated caller. It is never stored on a
// user record.
const RoleAnonymous models.Role = ""

var (
	anyone = []models.Role{RoleAnonymous, models.RoleBackoffice, models.RoleStationOperator}
	staff  = []models.Role{models.RoleBackoffice, models.RoleStationOperator}
	admin  = []models.Role{models.RoleBackoffice}
)

// permits is the single source of truth for authorization decisions.
// Booking create/cancel and reads stay open to any caller; the self-access
// restriction on owner listings is a known gap carried over unresolved.
var permits = map[Operation][]models.Role{
	OpBookingList:          anyone,
	OpBookingGet:           anyone,
	OpBookingCreate:        anyone,
	OpBookingCancel:        anyone,
	OpBookingListByStation: anyone,
	OpBookingListByOwner:   staff,
	OpBookingUpdate:        staff,
	OpBookingComplete:      staff,

	OpStationList:           staff,
	OpStationGet:            staff,
	OpStationCreate:         staff,
	OpStationUpdate:         staff,
	OpStationActivate:       staff,
	OpStationDeactivate:     staff,
	OpStationUpdateSchedule: staff,
	OpStationDelete:         admin,

	OpOwnerList:       staff,
	OpOwnerGet:        staff,
	OpOwnerCreate:     staff,
	OpOwnerUpdate:     staff,
	OpOwnerDelete:     staff,
	OpOwnerActivate:   staff,
	OpOwnerDeactivate: staff,

	OpUserList:   staff,
	OpUserGet:    staff,
	OpUserCreate: admin,
	OpUserUpdate: admin,
	OpUserDelete: admin,

	OpDashboardSummary: staff,
}

// Allowed reports whether the role may perform the operation. Unknown
// operations are denied.
func Allowed(role models.Role, op Operation) bool {
	for _, permitted := range permits[op] {
		if role == permitted {
			return true
		}
	}
	return false
}
