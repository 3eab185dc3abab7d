package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"evcharge/internal/apperrors"
	"evcharge/internal/models"
	"evcharge/libs/metrics"
)

// Reservation windows. A booking may be placed at most reservationHorizon
// ahead, and becomes immutable once less than modificationLeadTime remains.
const (
	reservationHorizon   = 7 * 24 * time.Hour
	modificationLeadTime = 12 * time.Hour
)

// BookingRepository is the storage contract for bookings.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) error
	Replace(ctx context.Context, booking *models.Booking) error
	ListByOwner(ctx context.Context, nic string) ([]models.Booking, error)
	ListByStation(ctx context.Context, stationID string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	CountActiveByStation(ctx context.Context, stationID string) (int64, error)
}

// StationReader gives the booking engine read-only access to stations.
type StationReader interface {
	GetByID(ctx context.Context, id string) (*models.ChargingStation, error)
}

// BookingService implements the booking lifecycle rules.
type BookingService struct {
	bookings BookingRepository
	stations StationReader
	locks    *StationLocks
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewBookingService builds BookingService. metrics may be nil.
func NewBookingService(bookings BookingRepository, stations StationReader, locks *StationLocks, m *metrics.Metrics, logger *zap.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		stations: stations,
		locks:    locks,
		metrics:  m,
		logger:   logger,
	}
}

// CreateBookingInput carries the fields needed to place a booking.
type CreateBookingInput struct {
	OwnerNIC        string
	StationID       string
	ReservationTime time.Time
}

// Create validates the reservation window and the target station, then
// persists a new active booking. Creation for a station is serialized with
// that station's deactivation so the active-booking count it relies on stays
// truthful.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	input.OwnerNIC = strings.TrimSpace(input.OwnerNIC)
	input.StationID = strings.TrimSpace(input.StationID)
	if input.OwnerNIC == "" {
		return nil, fmt.Errorf("owner NIC is required: %w", apperrors.ErrValidation)
	}
	if input.StationID == "" {
		return nil, fmt.Errorf("station id is required: %w", apperrors.ErrValidation)
	}
	if err := validateReservationTime(input.ReservationTime); err != nil {
		return nil, err
	}

	s.locks.Lock(input.StationID)
	defer s.locks.Unlock(input.StationID)

	station, err := s.stations.GetByID(ctx, input.StationID)
	if err != nil {
		return nil, err
	}
	if station.Status != models.StatusActive {
		return nil, fmt.Errorf("station %s is not active: %w", station.ID, apperrors.ErrConflict)
	}

	booking := &models.Booking{
		OwnerNIC:        input.OwnerNIC,
		StationID:       input.StationID,
		ReservationTime: input.ReservationTime.UTC(),
		Status:          models.BookingStatusActive,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.BookingsCreated.Inc()
	}
	s.logger.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("owner_nic", booking.OwnerNIC),
		zap.String("station_id", booking.StationID),
		zap.Time("reservation_time", booking.ReservationTime))
	return booking, nil
}

// UpdateBookingInput carries the replaceable booking fields.
type UpdateBookingInput struct {
	StationID       string
	ReservationTime time.Time
}

// Update replaces the station reference and reservation time of an active
// booking, provided at least the lead time remains before the current
// reservation. Like Create, the target station's lock is held across the
// active check and the write so the booking cannot land on a station that is
// deactivating concurrently.
func (s *BookingService) Update(ctx context.Context, id string, input UpdateBookingInput) error {
	existing, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status != models.BookingStatusActive {
		return fmt.Errorf("booking %s is not active: %w", id, apperrors.ErrConflict)
	}
	if err := checkLeadTime(existing.ReservationTime); err != nil {
		return err
	}

	input.StationID = strings.TrimSpace(input.StationID)
	if input.StationID == "" {
		return fmt.Errorf("station id is required: %w", apperrors.ErrValidation)
	}
	if err := validateReservationTime(input.ReservationTime); err != nil {
		return err
	}

	s.locks.Lock(input.StationID)
	defer s.locks.Unlock(input.StationID)

	station, err := s.stations.GetByID(ctx, input.StationID)
	if err != nil {
		return err
	}
	if station.Status != models.StatusActive {
		return fmt.Errorf("station %s is not active: %w", station.ID, apperrors.ErrConflict)
	}

	existing.StationID = input.StationID
	existing.ReservationTime = input.ReservationTime.UTC()
	if err := s.bookings.Replace(ctx, existing); err != nil {
		return err
	}

	s.logger.Info("booking updated", zap.String("booking_id", id))
	return nil
}

// Cancel moves an active booking to Cancelled, provided at least the lead
// time remains. Cancelled is terminal; cancelling again is a conflict.
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	existing, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status != models.BookingStatusActive {
		return fmt.Errorf("booking %s is not active: %w", id, apperrors.ErrConflict)
	}
	if err := checkLeadTime(existing.ReservationTime); err != nil {
		return err
	}

	existing.Status = models.BookingStatusCancelled
	if err := s.bookings.Replace(ctx, existing); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.BookingsCancelled.Inc()
	}
	s.logger.Info("booking cancelled", zap.String("booking_id", id))
	return nil
}

// Complete marks an active booking as completed. The completion signal comes
// from outside the reservation flow, so no lead-time rule applies.
func (s *BookingService) Complete(ctx context.Context, id string) error {
	existing, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status != models.BookingStatusActive {
		return fmt.Errorf("booking %s is not active: %w", id, apperrors.ErrConflict)
	}

	existing.Status = models.BookingStatusCompleted
	if err := s.bookings.Replace(ctx, existing); err != nil {
		return err
	}

	s.logger.Info("booking completed", zap.String("booking_id", id))
	return nil
}

// GetByID returns a booking by id.
func (s *BookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// GetByOwner returns all bookings for an owner NIC.
func (s *BookingService) GetByOwner(ctx context.Context, nic string) ([]models.Booking, error) {
	return s.bookings.ListByOwner(ctx, nic)
}

// GetByStation returns all bookings for a station.
func (s *BookingService) GetByStation(ctx context.Context, stationID string) ([]models.Booking, error) {
	return s.bookings.ListByStation(ctx, stationID)
}

// GetAll returns every booking.
func (s *BookingService) GetAll(ctx context.Context) ([]models.Booking, error) {
	return s.bookings.ListAll(ctx)
}

func validateReservationTime(reservation time.Time) error {
	now := time.Now().UTC()
	if reservation.Before(now) {
		return fmt.Errorf("reservation must be in the future: %w", apperrors.ErrValidation)
	}
	if reservation.After(now.Add(reservationHorizon)) {
		return fmt.Errorf("reservation must be within 7 days: %w", apperrors.ErrValidation)
	}
	return nil
}

func checkLeadTime(reservation time.Time) error {
	if time.Until(reservation) < modificationLeadTime {
		return fmt.Errorf("allowed only at least 12 hours before reservation: %w", apperrors.ErrConflict)
	}
	return nil
}
