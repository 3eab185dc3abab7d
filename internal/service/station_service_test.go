package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"evcharge/internal/apperrors"
	"evcharge/internal/models"
)

func newStationFixture(t *testing.T) (*StationService, *BookingService, *fakeStationRepo) {
	t.Helper()
	stations := newFakeStationRepo()
	bookings := newFakeBookingRepo()
	locks := NewStationLocks()
	stationSvc := NewStationService(stations, bookings, locks, zap.NewNop())
	bookingSvc := NewBookingService(bookings, stations, locks, nil, zap.NewNop())
	return stationSvc, bookingSvc, stations
}

func TestStationCreate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newStationFixture(t)

	t.Run("defaults to active", func(t *testing.T) {
		station, err := svc.Create(ctx, StationInput{
			Location:       "Depot North",
			Type:           models.StationTypeDC,
			SlotsAvailable: 4,
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusActive, station.Status)
		assert.NotEmpty(t, station.ID)
		assert.NotNil(t, station.Schedule)
	})

	t.Run("rejects negative capacity", func(t *testing.T) {
		_, err := svc.Create(ctx, StationInput{
			Location:       "Depot South",
			Type:           models.StationTypeAC,
			SlotsAvailable: -1,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := svc.Create(ctx, StationInput{
			Location:       "Depot South",
			Type:           models.StationType("Tesla"),
			SlotsAvailable: 2,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestStationUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _, stations := newStationFixture(t)

	station, err := svc.Create(ctx, StationInput{
		Location:       "Depot North",
		Type:           models.StationTypeAC,
		SlotsAvailable: 2,
		Schedule:       []string{"Mon-Fri 08:00-20:00"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, station.ID, StationInput{
		Location:       "Depot North - Hall B",
		Type:           models.StationTypeDC,
		SlotsAvailable: 6,
		Schedule:       []string{"Daily 06:00-22:00"},
	}))

	updated, err := stations.GetByID(ctx, station.ID)
	require.NoError(t, err)
	assert.Equal(t, "Depot North - Hall B", updated.Location)
	assert.Equal(t, models.StationTypeDC, updated.Type)
	assert.Equal(t, 6, updated.SlotsAvailable)
	assert.Equal(t, []string{"Daily 06:00-22:00"}, updated.Schedule)
	assert.Equal(t, models.StatusActive, updated.Status)

	t.Run("schedule-only update keeps other fields", func(t *testing.T) {
		require.NoError(t, svc.UpdateSchedule(ctx, station.ID, []string{"Daily 00:00-24:00"}))
		got, err := stations.GetByID(ctx, station.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Daily 00:00-24:00"}, got.Schedule)
		assert.Equal(t, "Depot North - Hall B", got.Location)
	})
}

func TestStationDeactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked by an active booking, allowed after cancel", func(t *testing.T) {
		stationSvc, bookingSvc, stations := newStationFixture(t)
		station, err := stationSvc.Create(ctx, StationInput{
			Location:       "Depot North",
			Type:           models.StationTypeAC,
			SlotsAvailable: 4,
		})
		require.NoError(t, err)

		booking, err := bookingSvc.Create(ctx, CreateBookingInput{
			OwnerNIC:        "991234567V",
			StationID:       station.ID,
			ReservationTime: time.Now().Add(48 * time.Hour),
		})
		require.NoError(t, err)

		assert.ErrorIs(t, stationSvc.Deactivate(ctx, station.ID), apperrors.ErrConflict)

		require.NoError(t, bookingSvc.Cancel(ctx, booking.ID))
		require.NoError(t, stationSvc.Deactivate(ctx, station.ID))

		got, err := stations.GetByID(ctx, station.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusInactive, got.Status)
	})

	t.Run("completed bookings do not block", func(t *testing.T) {
		stationSvc, bookingSvc, _ := newStationFixture(t)
		station, err := stationSvc.Create(ctx, StationInput{
			Location:       "Depot South",
			Type:           models.StationTypeDC,
			SlotsAvailable: 2,
		})
		require.NoError(t, err)

		booking, err := bookingSvc.Create(ctx, CreateBookingInput{
			OwnerNIC:        "991234567V",
			StationID:       station.ID,
			ReservationTime: time.Now().Add(2 * time.Hour),
		})
		require.NoError(t, err)
		require.NoError(t, bookingSvc.Complete(ctx, booking.ID))

		assert.NoError(t, stationSvc.Deactivate(ctx, station.ID))
	})

	t.Run("unknown station is not found", func(t *testing.T) {
		stationSvc, _, _ := newStationFixture(t)
		assert.ErrorIs(t, stationSvc.Deactivate(ctx, "missing"), apperrors.ErrNotFound)
	})
}

// gatedCounter pauses Deactivate between its active-booking count and the
// status write, exposing the window the per-station lock must close.
type gatedCounter struct {
	inner   ActiveBookingCounter
	entered chan struct{}
	release chan struct{}
}

func (g *gatedCounter) CountActiveByStation(ctx context.Context, stationID string) (int64, error) {
	count, err := g.inner.CountActiveByStation(ctx, stationID)
	close(g.entered)
	<-g.release
	return count, err
}

func TestStationDeactivateSerializesWithBookingMove(t *testing.T) {
	ctx := context.Background()

	stations := newFakeStationRepo()
	bookings := newFakeBookingRepo()
	locks := NewStationLocks()
	gate := &gatedCounter{
		inner:   bookings,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	stationSvc := NewStationService(stations, gate, locks, zap.NewNop())
	bookingSvc := NewBookingService(bookings, stations, locks, nil, zap.NewNop())

	source, err := stationSvc.Create(ctx, StationInput{
		Location:       "Depot North",
		Type:           models.StationTypeAC,
		SlotsAvailable: 4,
	})
	require.NoError(t, err)
	target, err := stationSvc.Create(ctx, StationInput{
		Location:       "Depot South",
		Type:           models.StationTypeDC,
		SlotsAvailable: 2,
	})
	require.NoError(t, err)

	booking, err := bookingSvc.Create(ctx, CreateBookingInput{
		OwnerNIC:        "991234567V",
		StationID:       source.ID,
		ReservationTime: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	// Deactivate the target station, pausing after it observed zero active
	// bookings while it still holds the station lock.
	deactivateErr := make(chan error, 1)
	go func() {
		deactivateErr <- stationSvc.Deactivate(ctx, target.ID)
	}()
	<-gate.entered

	// Move the booking onto the deactivating station. The update must wait for
	// the lock and then see the station Inactive, never slip in between.
	updateErr := make(chan error, 1)
	go func() {
		updateErr <- bookingSvc.Update(ctx, booking.ID, UpdateBookingInput{
			StationID:       target.ID,
			ReservationTime: time.Now().Add(48 * time.Hour),
		})
	}()
	close(gate.release)

	require.NoError(t, <-deactivateErr)
	assert.ErrorIs(t, <-updateErr, apperrors.ErrConflict)

	got, err := stations.GetByID(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, got.Status)

	count, err := bookings.CountActiveByStation(ctx, target.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	unmoved, err := bookings.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, source.ID, unmoved.StationID)
}

func TestStationActivate(t *testing.T) {
	ctx := context.Background()
	stationSvc, _, stations := newStationFixture(t)

	station, err := stationSvc.Create(ctx, StationInput{
		Location:       "Depot North",
		Type:           models.StationTypeAC,
		SlotsAvailable: 4,
	})
	require.NoError(t, err)
	require.NoError(t, stationSvc.Deactivate(ctx, station.ID))
	require.NoError(t, stationSvc.Activate(ctx, station.ID))

	got, err := stations.GetByID(ctx, station.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)

	assert.ErrorIs(t, stationSvc.Activate(ctx, "missing"), apperrors.ErrNotFound)
}
