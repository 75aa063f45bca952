package poller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/appclacks/dashboard/internal/util"
	serveraggregates "github.com/appclacks/dashboard/pkg/server/aggregates"
	trackeraggregates "github.com/appclacks/dashboard/pkg/tracker/aggregates"
	"github.com/facebookgo/clock"
	er "github.com/mcorbin/corbierror"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const (
	defaultInterval = 10 * time.Second
	defaultTimeout  = 10 * time.Second
)

type Fetcher interface {
	FetchServices(ctx context.Context) (*trackeraggregates.Services, error)
	FetchServers(ctx context.Context) ([]*serveraggregates.Server, error)
}

// Snapshot is the result of one complete fetch of the upstream API.
type Snapshot struct {
	ID        string
	Sequence  uint64
	FetchedAt time.Time
	Services  *trackeraggregates.Services
	Servers   []*serveraggregates.Server
}

// Poller refreshes the upstream telemetry on a fixed interval and keeps the
// snapshot of the most recently started fetch that completed.
type Poller struct {
	logger       *slog.Logger
	fetcher      Fetcher
	clock        clock.Clock
	interval     time.Duration
	timeout      time.Duration
	sequence     atomic.Uint64
	lock         sync.RWMutex
	latest       *Snapshot
	fetchCounter *prometheus.CounterVec
	lastSuccess  prometheus.Gauge
	wg           sync.WaitGroup
	stop         chan bool
	ticker       *clock.Ticker
}

func parseDuration(value string, defaultValue time.Duration) (time.Duration, error) {
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %s: %w", value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %s should be positive", value)
	}
	return d, nil
}

func New(logger *slog.Logger, config Configuration, fetcher Fetcher, clock clock.Clock, registry *prometheus.Registry) (*Poller, error) {
	interval, err := parseDuration(config.Interval, defaultInterval)
	if err != nil {
		return nil, err
	}
	timeout, err := parseDuration(config.Timeout, defaultTimeout)
	if err != nil {
		return nil, err
	}
	fetchCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poller_fetch_total",
			Help: "Count the number of upstream fetches",
		},
		[]string{"status"})
	err = registry.Register(fetchCounter)
	if err != nil {
		return nil, err
	}
	lastSuccess := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "poller_last_success_timestamp_seconds",
			Help: "Timestamp of the last successful upstream fetch",
		})
	err = registry.Register(lastSuccess)
	if err != nil {
		return nil, err
	}
	return &Poller{
		logger:       logger,
		fetcher:      fetcher,
		clock:        clock,
		interval:     interval,
		timeout:      timeout,
		fetchCounter: fetchCounter,
		lastSuccess:  lastSuccess,
		stop:         make(chan bool),
	}, nil
}

// Refresh fetches services and servers concurrently. The snapshot is
// discarded if a fetch started later already completed.
func (p *Poller) Refresh(ctx context.Context) error {
	sequence := p.sequence.Add(1)
	id := util.NewUUID()
	p.logger.Debug(fmt.Sprintf("fetch %s started (sequence %d)", id, sequence))

	var services *trackeraggregates.Services
	var servers []*serveraggregates.Server
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		services, err = p.fetcher.FetchServices(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		servers, err = p.fetcher.FetchServers(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		p.fetchCounter.With(prometheus.Labels{"status": "failure"}).Inc()
		return fmt.Errorf("fail to fetch upstream telemetry: %w", err)
	}
	snapshot := &Snapshot{
		ID:        id,
		Sequence:  sequence,
		FetchedAt: p.clock.Now(),
		Services:  services,
		Servers:   servers,
	}
	if !p.store(snapshot) {
		p.fetchCounter.With(prometheus.Labels{"status": "stale"}).Inc()
		p.logger.Debug(fmt.Sprintf("fetch %s discarded, a newer snapshot is already available", id))
		return nil
	}
	p.fetchCounter.With(prometheus.Labels{"status": "success"}).Inc()
	p.lastSuccess.Set(float64(snapshot.FetchedAt.Unix()))
	return nil
}

func (p *Poller) store(snapshot *Snapshot) bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.latest != nil && p.latest.Sequence > snapshot.Sequence {
		return false
	}
	p.latest = snapshot
	return true
}

func (p *Poller) Latest() (*Snapshot, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.latest, p.latest != nil
}

func (p *Poller) Services(ctx context.Context) (*trackeraggregates.Services, error) {
	snapshot, ok := p.Latest()
	if !ok {
		return nil, er.New("no data fetched from upstream yet", er.NotFound, true)
	}
	return snapshot.Services, nil
}

func (p *Poller) Servers(ctx context.Context) ([]*serveraggregates.Server, error) {
	snapshot, ok := p.Latest()
	if !ok {
		return nil, er.New("no data fetched from upstream yet", er.NotFound, true)
	}
	return snapshot.Servers, nil
}

func (p *Poller) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	if err := p.Refresh(ctx); err != nil {
		p.logger.Error(err.Error())
	}
}

func (p *Poller) Start() {
	p.logger.Info(fmt.Sprintf("starting upstream poller (interval %s)", p.interval))
	p.ticker = p.clock.Ticker(p.interval)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.refresh()
		for {
			select {
			case <-p.stop:
				return
			case <-p.ticker.C:
				p.logger.Debug("refreshing upstream telemetry")
				p.refresh()
			}
		}
	}()
}

func (p *Poller) Stop() {
	p.logger.Info("stopping upstream poller")
	p.ticker.Stop()
	p.stop <- true
	p.wg.Wait()
}
