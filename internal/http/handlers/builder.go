package handlers

import (
	"context"

	serveraggregates "github.com/appclacks/dashboard/pkg/server/aggregates"
	trackeraggregates "github.com/appclacks/dashboard/pkg/tracker/aggregates"
)

type TrackerService interface {
	Track(ctx context.Context) (*trackeraggregates.Tracker, error)
}

type ServerService interface {
	Cards(ctx context.Context, query serveraggregates.Query) ([]serveraggregates.Card, error)
	Card(ctx context.Context, id uint64) (*serveraggregates.Card, error)
}

type Refresher interface {
	Refresh(ctx context.Context) error
}

type Builder struct {
	tracker   TrackerService
	server    ServerService
	refresher Refresher
}

func NewBuilder(tracker TrackerService, server ServerService, refresher Refresher) *Builder {
	return &Builder{
		tracker:   tracker,
		server:    server,
		refresher: refresher,
	}
}
