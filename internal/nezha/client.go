package nezha

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/appclacks/dashboard/internal/validator"
	serveraggregates "github.com/appclacks/dashboard/pkg/server/aggregates"
	trackeraggregates "github.com/appclacks/dashboard/pkg/tracker/aggregates"
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-retryablehttp"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client reads telemetry from the upstream dashboard API.
type Client struct {
	logger *slog.Logger
	url    string
	http   *http.Client
}

func New(logger *slog.Logger, config Configuration) (*Client, error) {
	err := validator.Validator.Struct(config)
	if err != nil {
		return nil, err
	}
	timeout := 10 * time.Second
	if config.Timeout != "" {
		timeout, err = time.ParseDuration(config.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid upstream timeout %s: %w", config.Timeout, err)
		}
	}
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = config.RetryMax
	retryClient.Logger = logger
	retryClient.HTTPClient.Timeout = timeout
	return &Client{
		logger: logger,
		url:    strings.TrimSuffix(config.URL, "/"),
		http:   retryClient.StandardClient(),
	}, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+path, nil)
	if err != nil {
		return nil, fmt.Errorf("fail to create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	response, err := c.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("fail to call %s: %w", path, err)
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("fail to read response body from %s: %w", path, err)
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("got unexpected http %d status code from %s: %s", response.StatusCode, path, string(body))
	}
	c.logger.Debug(fmt.Sprintf("fetched %s from %s", humanize.Bytes(uint64(len(body))), path))
	return body, nil
}

// FetchServices returns the services in the order upstream sent them.
func (c *Client) FetchServices(ctx context.Context) (*trackeraggregates.Services, error) {
	body, err := c.get(ctx, "/api/v1/service")
	if err != nil {
		return nil, err
	}
	return DecodeServices(body)
}

func (c *Client) FetchServers(ctx context.Context) ([]*serveraggregates.Server, error) {
	body, err := c.get(ctx, "/api/v1/server")
	if err != nil {
		return nil, err
	}
	return DecodeServers(body)
}

// DecodeServices parses a service response. The services object is walked
// key by key so that the upstream order is kept.
func DecodeServices(body []byte) (*trackeraggregates.Services, error) {
	result := &trackeraggregates.Services{
		Entries: []trackeraggregates.Entry{},
	}
	success := true
	upstreamError := ""
	iter := jsoniter.ParseBytes(json, body)
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
		switch field {
		case "success":
			success = iter.ReadBool()
		case "error":
			upstreamError = iter.ReadString()
		case "data":
			iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
				switch field {
				case "services":
					iter.ReadMapCB(func(iter *jsoniter.Iterator, key string) bool {
						var data serviceData
						iter.ReadVal(&data)
						result.Entries = append(result.Entries, trackeraggregates.Entry{
							Key:    key,
							Series: data.toSeries(),
						})
						return iter.Error == nil
					})
				case "cycle_transfer_stats":
					raw := bytes.TrimSpace(iter.SkipAndReturnBytes())
					if len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
						result.CycleTransferStats = bytes.Clone(raw)
					}
				default:
					iter.Skip()
				}
				return iter.Error == nil
			})
		default:
			iter.Skip()
		}
		return iter.Error == nil
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, fmt.Errorf("fail to decode services response: %w", iter.Error)
	}
	if !success {
		return nil, fmt.Errorf("upstream returned an error: %s", upstreamError)
	}
	return result, nil
}

func DecodeServers(body []byte) ([]*serveraggregates.Server, error) {
	var response serversResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("fail to decode servers response: %w", err)
	}
	if !response.Success {
		return nil, fmt.Errorf("upstream returned an error: %s", response.Error)
	}
	result := make([]*serveraggregates.Server, 0, len(response.Data))
	for _, s := range response.Data {
		result = append(result, s.toServer())
	}
	return result, nil
}
