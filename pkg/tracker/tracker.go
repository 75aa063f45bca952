package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/appclacks/dashboard/pkg/tracker/aggregates"
	"github.com/facebookgo/clock"
)

type Store interface {
	Services(ctx context.Context) (*aggregates.Services, error)
}

type Service struct {
	logger *slog.Logger
	store  Store
	clock  clock.Clock
}

func New(logger *slog.Logger, store Store, clock clock.Clock) *Service {
	return &Service{
		logger: logger,
		store:  store,
		clock:  clock,
	}
}

// Track aggregates every service of the latest snapshot, keeping the
// upstream order.
func (s *Service) Track(ctx context.Context) (*aggregates.Tracker, error) {
	services, err := s.store.Services(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	result := &aggregates.Tracker{
		Services:           make([]aggregates.TrackedService, 0, len(services.Entries)),
		CycleTransferStats: services.CycleTransferStats,
	}
	for _, entry := range services.Entries {
		aggregate := Aggregate(entry.Series, now)
		if !aggregate.HasData {
			s.logger.Debug(fmt.Sprintf("no check recorded for service %s", entry.Key))
		}
		result.Services = append(result.Services, aggregates.TrackedService{
			Key:    entry.Key,
			Title:  entry.Series.ServiceName,
			Result: aggregate,
		})
	}
	return result, nil
}
