package service

import "sync"

// StationLocks serializes capacity-sensitive operations per station: booking
// creation and station deactivation for the same station must not interleave
// between the active-booking count and the status write.
type StationLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStationLocks returns an empty keyed lock set.
func NewStationLocks() *StationLocks {
	return &StationLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the station id, creating it on first use.
// Locks are never removed; the station population is small and bounded.
func (l *StationLocks) Lock(stationID string) {
	l.get(stationID).Lock()
}

// Unlock releases the mutex for the station id.
func (l *StationLocks) Unlock(stationID string) {
	l.get(stationID).Unlock()
}

func (l *StationLocks) get(stationID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[stationID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[stationID] = lock
	}
	return lock
}
