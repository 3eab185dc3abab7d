package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"evcharge/internal/apperrors"
	"evcharge/internal/models"
)

// StationRepository is the storage contract for charging stations.
type StationRepository interface {
	GetByID(ctx context.Context, id string) (*models.ChargingStation, error)
	Insert(ctx context.Context, station *models.ChargingStation) error
	Replace(ctx context.Context, station *models.ChargingStation) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.ChargingStation, error)
}

// ActiveBookingCounter is the booking-side collaborator used to guard
// deactivation.
type ActiveBookingCounter interface {
	CountActiveByStation(ctx context.Context, stationID string) (int64, error)
}

// StationService implements station CRUD and the capacity-coupled lifecycle.
type StationService struct {
	stations StationRepository
	bookings ActiveBookingCounter
	locks    *StationLocks
	logger   *zap.Logger
}

// NewStationService builds StationService.
func NewStationService(stations StationRepository, bookings ActiveBookingCounter, locks *StationLocks, logger *zap.Logger) *StationService {
	return &StationService{
		stations: stations,
		bookings: bookings,
		locks:    locks,
		logger:   logger,
	}
}

// StationInput carries the mutable station fields.
type StationInput struct {
	Location       string
	Type           models.StationType
	SlotsAvailable int
	Schedule       []string
}

func (in *StationInput) validate() error {
	in.Location = strings.TrimSpace(in.Location)
	if in.Location == "" {
		return fmt.Errorf("location is required: %w", apperrors.ErrValidation)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("station type must be AC or DC: %w", apperrors.ErrValidation)
	}
	if in.SlotsAvailable < 0 {
		return fmt.Errorf("slots available must not be negative: %w", apperrors.ErrValidation)
	}
	return nil
}

// Create stores a new station, always starting Active.
func (s *StationService) Create(ctx context.Context, input StationInput) (*models.ChargingStation, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	station := &models.ChargingStation{
		Location:       input.Location,
		Type:           input.Type,
		SlotsAvailable: input.SlotsAvailable,
		Status:         models.StatusActive,
		Schedule:       input.Schedule,
	}
	if station.Schedule == nil {
		station.Schedule = []string{}
	}
	if err := s.stations.Insert(ctx, station); err != nil {
		return nil, err
	}

	s.logger.Info("station created", zap.String("station_id", station.ID), zap.String("location", station.Location))
	return station, nil
}

// Update fully replaces location, type, capacity and schedule. Status is not
// touched here; activation has its own operations.
func (s *StationService) Update(ctx context.Context, id string, input StationInput) error {
	if err := input.validate(); err != nil {
		return err
	}

	existing, err := s.stations.GetByID(ctx, id)
	if err != nil {
		return err
	}

	existing.Location = input.Location
	existing.Type = input.Type
	existing.SlotsAvailable = input.SlotsAvailable
	existing.Schedule = input.Schedule
	if existing.Schedule == nil {
		existing.Schedule = []string{}
	}
	return s.stations.Replace(ctx, existing)
}

// UpdateSchedule replaces only the schedule windows.
func (s *StationService) UpdateSchedule(ctx context.Context, id string, schedule []string) error {
	existing, err := s.stations.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if schedule == nil {
		schedule = []string{}
	}
	existing.Schedule = schedule
	return s.stations.Replace(ctx, existing)
}

// Activate unconditionally sets the station Active.
func (s *StationService) Activate(ctx context.Context, id string) error {
	station, err := s.stations.GetByID(ctx, id)
	if err != nil {
		return err
	}

	station.Status = models.StatusActive
	if err := s.stations.Replace(ctx, station); err != nil {
		return err
	}

	s.logger.Info("station activated", zap.String("station_id", id))
	return nil
}

// Deactivate sets the station Inactive unless it still holds active
// bookings. The check and the write run under the station's lock so a
// concurrent booking creation cannot slip in between them.
func (s *StationService) Deactivate(ctx context.Context, id string) error {
	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	station, err := s.stations.GetByID(ctx, id)
	if err != nil {
		return err
	}

	activeCount, err := s.bookings.CountActiveByStation(ctx, id)
	if err != nil {
		return err
	}
	if activeCount > 0 {
		return fmt.Errorf("station %s has %d active bookings: %w", id, activeCount, apperrors.ErrConflict)
	}

	station.Status = models.StatusInactive
	if err := s.stations.Replace(ctx, station); err != nil {
		return err
	}

	s.logger.Info("station deactivated", zap.String("station_id", id))
	return nil
}

// Delete removes a station by id.
func (s *StationService) Delete(ctx context.Context, id string) error {
	return s.stations.Delete(ctx, id)
}

// GetByID returns a station by id.
func (s *StationService) GetByID(ctx context.Context, id string) (*models.ChargingStation, error) {
	return s.stations.GetByID(ctx, id)
}

// GetAll returns every station.
func (s *StationService) GetAll(ctx context.Context) ([]models.ChargingStation, error) {
	return s.stations.ListAll(ctx)
}
