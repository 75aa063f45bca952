package server

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/appclacks/dashboard/pkg/server/aggregates"
	"github.com/facebookgo/clock"
	er "github.com/mcorbin/corbierror"
)

type Store interface {
	Servers(ctx context.Context) ([]*aggregates.Server, error)
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

func MatchQuery(card aggregates.Card, server *aggregates.Server, query aggregates.Query) bool {
	if query.OnlineOnly && !card.Online {
		return false
	}
	if query.Tag != "" && !slices.Contains(server.Tags, query.Tag) {
		return false
	}
	return true
}

// Cards returns the cards of the servers matching the query, sorted by
// display index (highest first) then by ID.
func (s *Service) Cards(ctx context.Context, query aggregates.Query) ([]aggregates.Card, error) {
	servers, err := s.store.Servers(ctx)
	if err != nil {
		return nil, err
	}
	sorted := slices.Clone(servers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DisplayIndex != sorted[j].DisplayIndex {
			return sorted[i].DisplayIndex > sorted[j].DisplayIndex
		}
		return sorted[i].ID < sorted[j].ID
	})
	now := s.clock.Now()
	result := []aggregates.Card{}
	for _, server := range sorted {
		card := BuildCard(now, *server)
		if MatchQuery(card, server, query) {
			result = append(result, card)
		}
	}
	s.logger.Debug(fmt.Sprintf("%d server cards built out of %d servers", len(result), len(servers)))
	return result, nil
}

func (s *Service) Card(ctx context.Context, id uint64) (*aggregates.Card, error) {
	servers, err := s.store.Servers(ctx)
	if err != nil {
		return nil, err
	}
	for _, server := range servers {
		if server.ID == id {
			card := BuildCard(s.clock.Now(), *server)
			return &card, nil
		}
	}
	return nil, er.Newf("server %d not found", er.NotFound, true, id)
}
