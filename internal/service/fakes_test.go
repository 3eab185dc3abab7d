package service

import (
	"context"
	"fmt"
	"sync"

	"evcharge/internal/apperrors"
	"evcharge/internal/models"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	seq      int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, apperrors.ErrNotFound)
	}
	copy := booking
	return &copy, nil
}

func (f *fakeBookingRepo) Insert(_ context.Context, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if booking.ID == "" {
		f.seq++
		booking.ID = fmt.Sprintf("booking-%d", f.seq)
	}
	booking.Version = 1
	f.bookings[booking.ID] = *booking
	return nil
}

func (f *fakeBookingRepo) Replace(_ context.Context, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.bookings[booking.ID]
	if !ok || stored.Version != booking.Version {
		return fmt.Errorf("booking %s modified concurrently: %w", booking.ID, apperrors.ErrConflict)
	}
	booking.Version++
	f.bookings[booking.ID] = *booking
	return nil
}

func (f *fakeBookingRepo) ListByOwner(_ context.Context, nic string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.OwnerNIC == nic {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByStation(_ context.Context, stationID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.StationID == stationID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAll(_ context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) CountActiveByStation(_ context.Context, stationID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, b := range f.bookings {
		if b.StationID == stationID && b.Status == models.BookingStatusActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bookings)), nil
}

type fakeStationRepo struct {
	mu       sync.Mutex
	stations map[string]models.ChargingStation
	seq      int
}

func newFakeStationRepo() *fakeStationRepo {
	return &fakeStationRepo{stations: make(map[string]models.ChargingStation)}
}

func (f *fakeStationRepo) GetByID(_ context.Context, id string) (*models.ChargingStation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	station, ok := f.stations[id]
	if !ok {
		return nil, fmt.Errorf("station %s: %w", id, apperrors.ErrNotFound)
	}
	copy := station
	return &copy, nil
}

func (f *fakeStationRepo) Insert(_ context.Context, station *models.ChargingStation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if station.ID == "" {
		f.seq++
		station.ID = fmt.Sprintf("station-%d", f.seq)
	}
	station.Version = 1
	f.stations[station.ID] = *station
	return nil
}

func (f *fakeStationRepo) Replace(_ context.Context, station *models.ChargingStation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.stations[station.ID]
	if !ok || stored.Version != station.Version {
		return fmt.Errorf("station %s modified concurrently: %w", station.ID, apperrors.ErrConflict)
	}
	station.Version++
	f.stations[station.ID] = *station
	return nil
}

func (f *fakeStationRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.stations[id]; !ok {
		return fmt.Errorf("station %s: %w", id, apperrors.ErrNotFound)
	}
	delete(f.stations, id)
	return nil
}

func (f *fakeStationRepo) ListAll(_ context.Context) ([]models.ChargingStation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.ChargingStation, 0, len(f.stations))
	for _, s := range f.stations {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStationRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.stations)), nil
}

type fakeOwnerRepo struct {
	mu     sync.Mutex
	owners map[string]models.EVOwner
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{owners: make(map[string]models.EVOwner)}
}

func (f *fakeOwnerRepo) GetByNIC(_ context.Context, nic string) (*models.EVOwner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	owner, ok := f.owners[nic]
	if !ok {
		return nil, fmt.Errorf("owner %s: %w", nic, apperrors.ErrNotFound)
	}
	copy := owner
	return &copy, nil
}

func (f *fakeOwnerRepo) Insert(_ context.Context, owner *models.EVOwner) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.owners[owner.NIC]; ok {
		return fmt.Errorf("NIC %s already exists: %w", owner.NIC, apperrors.ErrConflict)
	}
	owner.Version = 1
	f.owners[owner.NIC] = *owner
	return nil
}

func (f *fakeOwnerRepo) Replace(_ context.Context, owner *models.EVOwner) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.owners[owner.NIC]
	if !ok || stored.Version != owner.Version {
		return fmt.Errorf("owner %s modified concurrently: %w", owner.NIC, apperrors.ErrConflict)
	}
	owner.Version++
	f.owners[owner.NIC] = *owner
	return nil
}

func (f *fakeOwnerRepo) Delete(_ context.Context, nic string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.owners[nic]; !ok {
		return fmt.Errorf("owner %s: %w", nic, apperrors.ErrNotFound)
	}
	delete(f.owners, nic)
	return nil
}

func (f *fakeOwnerRepo) ListAll(_ context.Context) ([]models.EVOwner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.EVOwner, 0, len(f.owners))
	for _, o := range f.owners {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOwnerRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.owners)), nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
	}
	copy := user
	return &copy, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copy := u
			return &copy, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
}

func (f *fakeUserRepo) Insert(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("email %s already registered: %w", user.Email, apperrors.ErrConflict)
		}
	}
	if user.ID == "" {
		f.seq++
		user.ID = fmt.Sprintf("user-%d", f.seq)
	}
	user.Version = 1
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) Replace(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.ID]
	if !ok || stored.Version != user.Version {
		return fmt.Errorf("user %s modified concurrently: %w", user.ID, apperrors.ErrConflict)
	}
	user.Version++
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}
