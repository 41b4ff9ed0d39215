package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetricsCollector handles request metrics for the API server
type HTTPMetricsCollector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rateLimited     prometheus.Counter
}

// NewHTTPMetricsCollector creates and registers the HTTP collectors.
// Returns nil when metrics are disabled.
func NewHTTPMetricsCollector() *HTTPMetricsCollector {
	if Registry == nil {
		return nil
	}

	factory := promauto.With(Registry)

	return &HTTPMetricsCollector{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemHTTP,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route and status code",
		}, []string{"method", "route", "status_code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystemHTTP,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration distribution",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		rateLimited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemHTTP,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		}),
	}
}

// Instrument is a chi middleware recording request count and latency by route pattern
func (c *HTTPMetricsCollector) Instrument(next http.Handler) http.Handler {
	if c == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		c.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		c.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// RecordRateLimited counts a request rejected by the limiter
func (c *HTTPMetricsCollector) RecordRateLimited() {
	if c == nil {
		return
	}
	c.rateLimited.Inc()
}
