package server_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	mocks "github.com/appclacks/dashboard/mocks/github.com/appclacks/dashboard/pkg/server"
	"github.com/appclacks/dashboard/pkg/server"
	"github.com/appclacks/dashboard/pkg/server/aggregates"
	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newService(t *testing.T, servers []*aggregates.Server) *server.Service {
	t.Helper()
	store := new(mocks.MockStore)
	store.On("Servers", mock.Anything).Return(servers, nil)
	c := clock.NewMock()
	c.Add(now.Sub(c.Now()))
	return server.New(slog.Default(), store, c)
}

func TestCards(t *testing.T) {
	servers := []*aggregates.Server{
		{ID: 1, Name: "a", DisplayIndex: 0, LastActive: now, Tags: []string{"eu"}},
		{ID: 2, Name: "b", DisplayIndex: 10, LastActive: now.Add(-time.Hour)},
		{ID: 3, Name: "c", DisplayIndex: 0, LastActive: now, Tags: []string{"us"}},
	}
	service := newService(t, servers)

	cards, err := service.Cards(context.Background(), aggregates.Query{})
	assert.NoError(t, err)
	assert.Len(t, cards, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{cards[0].Name, cards[1].Name, cards[2].Name})

	cards, err = service.Cards(context.Background(), aggregates.Query{OnlineOnly: true})
	assert.NoError(t, err)
	assert.Len(t, cards, 2)

	cards, err = service.Cards(context.Background(), aggregates.Query{Tag: "us"})
	assert.NoError(t, err)
	assert.Len(t, cards, 1)
	assert.Equal(t, uint64(3), cards[0].ID)

	// the store order is left untouched
	assert.Equal(t, uint64(1), servers[0].ID)
}

func TestCard(t *testing.T) {
	service := newService(t, []*aggregates.Server{{ID: 7, Name: "x", LastActive: now}})

	card, err := service.Card(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "x", card.Name)
	assert.True(t, card.Online)

	_, err = service.Card(context.Background(), 8)
	assert.ErrorContains(t, err, "not found")
}
