package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apihttp "github.com/appclacks/dashboard/internal/http"
	"github.com/appclacks/dashboard/internal/http/handlers"
	serveraggregates "github.com/appclacks/dashboard/pkg/server/aggregates"
	trackeraggregates "github.com/appclacks/dashboard/pkg/tracker/aggregates"
	er "github.com/mcorbin/corbierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type fakeTracker struct {
	err error
}

func (f *fakeTracker) Track(ctx context.Context) (*trackeraggregates.Tracker, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &trackeraggregates.Tracker{
		Services: []trackeraggregates.TrackedService{
			{
				Key:   "2",
				Title: "web",
				Result: trackeraggregates.AggregateResult{
					Days:     []trackeraggregates.DayRecord{{Completed: true, Date: now.Add(-24 * time.Hour)}, {Completed: false, Date: now}},
					Uptime:   80,
					AvgDelay: 20,
					HasData:  true,
				},
			},
			{
				Key:    "1",
				Title:  "db",
				Result: trackeraggregates.AggregateResult{Days: []trackeraggregates.DayRecord{}},
			},
		},
		CycleTransferStats: []byte(`{"1":{"name":"monthly"}}`),
	}, nil
}

type fakeServers struct{}

func (f *fakeServers) Cards(ctx context.Context, query serveraggregates.Query) ([]serveraggregates.Card, error) {
	cards := []serveraggregates.Card{
		{ID: 1, Name: "paris", Online: true, Upload: "2.00KB/s", TotalUpload: "1.5 KiB", Billing: &serveraggregates.Billing{DaysLeft: 3, Warning: true}},
		{ID: 2, Name: "tokyo"},
	}
	if query.OnlineOnly {
		return cards[:1], nil
	}
	return cards, nil
}

func (f *fakeServers) Card(ctx context.Context, id uint64) (*serveraggregates.Card, error) {
	if id != 1 {
		return nil, er.Newf("server %d not found", er.NotFound, true, id)
	}
	return &serveraggregates.Card{ID: 1, Name: "paris", Plan: &serveraggregates.PlanData{Bandwidth: "1Gbps"}}, nil
}

type fakeRefresher struct {
	calls int
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.calls++
	return nil
}

type testCase struct {
	url            string
	expectedStatus int
	method         string
	headers        map[string]string
	body           string
}

func testHTTP(t *testing.T, baseURL string, c testCase, result any) {
	t.Helper()
	request, err := http.NewRequest(c.method, fmt.Sprintf("%s%s", baseURL, c.url), nil)
	assert.NoError(t, err)
	for k, v := range c.headers {
		request.Header.Set(k, v)
	}
	response, err := http.DefaultClient.Do(request)
	assert.NoError(t, err)
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	assert.NoError(t, err)
	assert.Equal(t, c.expectedStatus, response.StatusCode, string(body))
	if result != nil {
		err := json.NewDecoder(bytes.NewReader(body)).Decode(result)
		assert.NoError(t, err, "fail to unmarshal to json data %s", string(body))
	}
	if c.body != "" {
		assert.Contains(t, string(body), c.body)
	}
}

func newTestServer(t *testing.T, config apihttp.Configuration, tracker handlers.TrackerService, refresher handlers.Refresher) *httptest.Server {
	t.Helper()
	builder := handlers.NewBuilder(tracker, &fakeServers{}, refresher)
	server, err := apihttp.NewServer(slog.Default(), config, prometheus.NewRegistry(), builder)
	assert.NoError(t, err)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestAPI(t *testing.T) {
	refresher := &fakeRefresher{}
	ts := newTestServer(t, apihttp.Configuration{Host: "127.0.0.1", Port: 10000}, &fakeTracker{}, refresher)

	testHTTP(t, ts.URL, testCase{url: "/healthz", method: "GET", expectedStatus: 200}, nil)
	testHTTP(t, ts.URL, testCase{url: "/metrics", method: "GET", expectedStatus: 200, body: "http_responses_total"}, nil)

	tracker := handlers.TrackerOutput{}
	testHTTP(t, ts.URL, testCase{url: "/api/v1/service", method: "GET", expectedStatus: 200}, &tracker)
	assert.Len(t, tracker.Services, 2)
	assert.Equal(t, "2", tracker.Services[0].Key)
	assert.Equal(t, "web", tracker.Services[0].Title)
	assert.Equal(t, "80.00%", tracker.Services[0].UptimeDisplay)
	assert.Len(t, tracker.Services[0].Days, 2)
	assert.True(t, tracker.Services[0].Days[0].Completed)
	assert.Equal(t, "N/A", tracker.Services[1].UptimeDisplay)
	assert.False(t, tracker.Services[1].HasData)
	assert.JSONEq(t, `{"1":{"name":"monthly"}}`, string(tracker.CycleTransferStats))

	servers := handlers.ListServersOutput{}
	testHTTP(t, ts.URL, testCase{url: "/api/v1/server", method: "GET", expectedStatus: 200}, &servers)
	assert.Len(t, servers.Result, 2)
	assert.Equal(t, "2.00KB/s", servers.Result[0].Upload)
	assert.Equal(t, 3, servers.Result[0].Billing.DaysLeft)
	assert.Nil(t, servers.Result[1].Billing)

	testHTTP(t, ts.URL, testCase{url: "/api/v1/server?online=true", method: "GET", expectedStatus: 200}, &servers)
	assert.Len(t, servers.Result, 1)

	card := handlers.ServerCard{}
	testHTTP(t, ts.URL, testCase{url: "/api/v1/server/1", method: "GET", expectedStatus: 200}, &card)
	assert.Equal(t, "paris", card.Name)
	assert.Equal(t, "1Gbps", card.Plan.Bandwidth)
	testHTTP(t, ts.URL, testCase{url: "/api/v1/server/5", method: "GET", expectedStatus: 404, body: "server 5 not found"}, nil)
	testHTTP(t, ts.URL, testCase{url: "/api/v1/server/abc", method: "GET", expectedStatus: 400}, nil)

	output := handlers.FormatOutput{}
	testHTTP(t, ts.URL, testCase{url: "/api/v1/format/bytes?value=1536&decimals=1", method: "GET", expectedStatus: 200}, &output)
	assert.Equal(t, "1.5 KiB", output.Result)
	testHTTP(t, ts.URL, testCase{url: "/api/v1/format/bytes?value=1024", method: "GET", expectedStatus: 200}, &output)
	assert.Equal(t, "1 KiB", output.Result)
	testHTTP(t, ts.URL, testCase{url: "/api/v1/format/speed?value=2048", method: "GET", expectedStatus: 200}, &output)
	assert.Equal(t, "2.00KB/s", output.Result)
	testHTTP(t, ts.URL, testCase{url: "/api/v1/format/speed", method: "GET", expectedStatus: 400}, nil)
	testHTTP(t, ts.URL, testCase{url: "/api/v1/format/bytes?value=abc", method: "GET", expectedStatus: 400, body: "invalid value abc"}, nil)

	testHTTP(t, ts.URL, testCase{url: "/api/v1/refresh", method: "POST", expectedStatus: 200, body: "telemetry refreshed"}, nil)
	assert.Equal(t, 1, refresher.calls)

	testHTTP(t, ts.URL, testCase{url: "/api/v1/refresh", method: "GET", expectedStatus: 405}, nil)
	testHTTP(t, ts.URL, testCase{url: "/api/v1/unknown", method: "GET", expectedStatus: 404}, nil)
}

func TestAPIErrors(t *testing.T) {
	ts := newTestServer(t, apihttp.Configuration{Host: "127.0.0.1", Port: 10000}, &fakeTracker{err: er.New("no data fetched from upstream yet", er.NotFound, true)}, &fakeRefresher{})
	testHTTP(t, ts.URL, testCase{url: "/api/v1/service", method: "GET", expectedStatus: 404, body: "no data fetched"}, nil)

	ts = newTestServer(t, apihttp.Configuration{Host: "127.0.0.1", Port: 10000}, &fakeTracker{err: errors.New("boom")}, &fakeRefresher{})
	testHTTP(t, ts.URL, testCase{url: "/api/v1/service", method: "GET", expectedStatus: 500, body: "internal server error"}, nil)
}

func TestBasicAuth(t *testing.T) {
	config := apihttp.Configuration{
		Host:      "127.0.0.1",
		Port:      10000,
		BasicAuth: apihttp.BasicAuth{Username: "admin", Password: "secret"},
	}
	ts := newTestServer(t, config, &fakeTracker{}, &fakeRefresher{})
	testHTTP(t, ts.URL, testCase{url: "/healthz", method: "GET", expectedStatus: 200}, nil)
	testHTTP(t, ts.URL, testCase{url: "/api/v1/service", method: "GET", expectedStatus: 401}, nil)
	testHTTP(t, ts.URL, testCase{
		url:            "/api/v1/service",
		method:         "GET",
		expectedStatus: 200,
		// admin:secret
		headers: map[string]string{"Authorization": "Basic YWRtaW46c2VjcmV0"},
	}, nil)
}

func TestInvalidConfiguration(t *testing.T) {
	builder := handlers.NewBuilder(&fakeTracker{}, &fakeServers{}, &fakeRefresher{})
	_, err := apihttp.NewServer(slog.Default(), apihttp.Configuration{}, prometheus.NewRegistry(), builder)
	assert.Error(t, err)
}
