package service

import (
	"context"

	"go.uber.org/zap"
)

// Counter is any repository that can count its documents.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Summary aggregates entity counts for the dashboard.
type Summary struct {
	Users    int64 `json:"users"`
	Owners   int64 `json:"owners"`
	Stations int64 `json:"stations"`
	Bookings int64 `json:"bookings"`
}

// DashboardService produces summary counts across entities.
type DashboardService struct {
	users    Counter
	owners   Counter
	stations Counter
	bookings Counter
	logger   *zap.Logger
}

// NewDashboardService builds DashboardService.
func NewDashboardService(users, owners, stations, bookings Counter, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		users:    users,
		owners:   owners,
		stations: stations,
		bookings: bookings,
		logger:   logger,
	}
}

// GetSummary counts all entity collections. Any failure is logged with
// detail here; callers surface only a generic message.
func (s *DashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	var summary Summary
	var err error

	if summary.Users, err = s.users.Count(ctx); err != nil {
		s.logger.Error("failed to count users", zap.Error(err))
		return nil, err
	}
	if summary.Owners, err = s.owners.Count(ctx); err != nil {
		s.logger.Error("failed to count owners", zap.Error(err))
		return nil, err
	}
	if summary.Stations, err = s.stations.Count(ctx); err != nil {
		s.logger.Error("failed to count stations", zap.Error(err))
		return nil, err
	}
	if summary.Bookings, err = s.bookings.Count(ctx); err != nil {
		s.logger.Error("failed to count bookings", zap.Error(err))
		return nil, err
	}

	return &summary, nil
}
