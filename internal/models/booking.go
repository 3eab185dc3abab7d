package models

import "time"

// BookingStatus is the booking lifecycle state. Cancelled and Completed are
// terminal.
type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "Active"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusCompleted BookingStatus = "Completed"
)

// Booking links an EV owner to a charging station at a reservation time.
type Booking struct {
	ID              string        `bson:"_id,omitempty" json:"id"`
	OwnerNIC        string        `bson:"ownerNIC" json:"ownerNIC"`
	StationID       string        `bson:"stationId" json:"stationId"`
	ReservationTime time.Time     `bson:"reservationTime" json:"reservationTime"`
	Status          BookingStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	Version         int64         `bson:"version" json:"-"`
}
