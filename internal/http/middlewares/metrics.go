package middlewares

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// unmatched routes share one label value to keep cardinality bounded
const unknownPath = "?"

func MetricsMiddleware(histogram *prometheus.HistogramVec, counter *prometheus.CounterVec, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			start := time.Now()
			err := next(ec)
			if err != nil {
				// populate the response
				ec.Error(err)
			}
			duration := time.Since(start)
			method := ec.Request().Method
			path := ec.Path()
			response := ec.Response()
			if response == nil {
				logger.Error(fmt.Sprintf("response in metrics middleware is nil for %s %s", method, path))
				return nil
			}
			if response.Status == http.StatusNotFound || path == "" {
				path = unknownPath
			}
			histogram.With(prometheus.Labels{"method": method, "path": path}).Observe(duration.Seconds())
			counter.With(prometheus.Labels{"method": method, "status": strconv.Itoa(response.Status), "path": path}).Inc()
			// the error handler was already called
			return nil
		}
	}
}
