package tracker

import (
	"time"

	"github.com/appclacks/dashboard/pkg/tracker/aggregates"
	"github.com/montanaflynn/stats"
)

const day = 24 * time.Hour

// Aggregate computes the day calendar, the uptime percentage and the
// average delay of a service. The last day of the window is dated now.
func Aggregate(series aggregates.ServiceSeries, now time.Time) aggregates.AggregateResult {
	window := len(series.Up)
	days := make([]aggregates.DayRecord, 0, window)
	for i, up := range series.Up {
		var down int64
		if i < len(series.Down) {
			down = series.Down[i]
		}
		days = append(days, aggregates.DayRecord{
			Completed: up > down,
			Date:      now.Add(-time.Duration(window-1-i) * day),
		})
	}

	totalUp := sum(series.Up)
	totalChecks := totalUp + sum(series.Down)
	result := aggregates.AggregateResult{
		Days: days,
	}
	if totalChecks != 0 {
		result.HasData = true
		result.Uptime = 100 * float64(totalUp) / float64(totalChecks)
	}
	if len(series.Delay) > 0 {
		mean, err := stats.Mean(stats.Float64Data(series.Delay))
		if err == nil {
			result.AvgDelay = mean
		}
	}
	return result
}

func sum(values []int64) int64 {
	var total int64
	for _, v := range values {
		total += v
	}
	return total
}
