package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/appclacks/dashboard/pkg/tracker/aggregates"
	"github.com/labstack/echo/v4"
)

const noData = "N/A"

type Day struct {
	Completed bool      `json:"completed"`
	Date      time.Time `json:"date"`
}

type TrackedService struct {
	Key           string  `json:"key"`
	Title         string  `json:"title"`
	Days          []Day   `json:"days"`
	Uptime        float64 `json:"uptime"`
	UptimeDisplay string  `json:"uptime_display"`
	HasData       bool    `json:"has_data"`
	AvgDelay      float64 `json:"avg_delay"`
}

type TrackerOutput struct {
	Services           []TrackedService `json:"services"`
	CycleTransferStats json.RawMessage  `json:"cycle_transfer_stats,omitempty"`
}

func toTrackedService(service aggregates.TrackedService) TrackedService {
	days := make([]Day, 0, len(service.Result.Days))
	for _, day := range service.Result.Days {
		days = append(days, Day{
			Completed: day.Completed,
			Date:      day.Date,
		})
	}
	display := noData
	if service.Result.HasData {
		display = fmt.Sprintf("%.2f%%", service.Result.Uptime)
	}
	return TrackedService{
		Key:           service.Key,
		Title:         service.Title,
		Days:          days,
		Uptime:        service.Result.Uptime,
		UptimeDisplay: display,
		HasData:       service.Result.HasData,
		AvgDelay:      service.Result.AvgDelay,
	}
}

func (b *Builder) ServiceTracker(ec echo.Context) error {
	tracker, err := b.tracker.Track(ec.Request().Context())
	if err != nil {
		return err
	}
	result := TrackerOutput{
		Services:           []TrackedService{},
		CycleTransferStats: tracker.CycleTransferStats,
	}
	for _, service := range tracker.Services {
		result.Services = append(result.Services, toTrackedService(service))
	}
	return ec.JSON(http.StatusOK, &result)
}

func (b *Builder) Refresh(ec echo.Context) error {
	err := b.refresher.Refresh(ec.Request().Context())
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, NewResponse("telemetry refreshed"))
}
