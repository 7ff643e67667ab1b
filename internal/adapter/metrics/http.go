package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/mergington/activities/internal/platform/errors"
)

// HTTPMetrics holds Prometheus metrics for HTTP request tracking.
type HTTPMetrics struct {
	RequestDuration *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
	InFlightGauge   prometheus.Gauge
}

// NewHTTPMetrics creates and registers HTTP metrics on the given registry.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status_code"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status_code"}),
		InFlightGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of HTTP requests currently being processed.",
		}),
	}

	reg.MustRegister(m.RequestDuration, m.RequestsTotal, m.InFlightGauge)
	return m
}

// Middleware returns an Echo middleware that records request counts and
// durations for the activity endpoints. Operational endpoints are not
// recorded. It must wrap the error-handling middleware so that structured
// signup errors are observed with the status the client received.
func (m *HTTPMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Path() {
			case "/metrics", "/health/startup", "/health/live", "/health/ready":
				return next(c)
			}

			m.InFlightGauge.Inc()
			start := time.Now()

			err := next(c)

			m.InFlightGauge.Dec()
			status := responseStatus(c, err)
			elapsed := time.Since(start).Seconds()
			m.RequestDuration.WithLabelValues(c.Request().Method, c.Path(), status).Observe(elapsed)
			m.RequestsTotal.WithLabelValues(c.Request().Method, c.Path(), status).Inc()

			return err
		}
	}
}

// responseStatus resolves the status label for a finished request. When an
// error escapes the inner chain the response is not committed yet, so the
// status comes from the error itself: echo's own HTTPErrors carry their
// code, anything else maps through the structured error taxonomy.
func responseStatus(c echo.Context, err error) string {
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return strconv.Itoa(httpErr.Code)
		}
		return strconv.Itoa(apperrors.AsStructuredError(err).HTTPStatus())
	}
	return strconv.Itoa(c.Response().Status)
}
