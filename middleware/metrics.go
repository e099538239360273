package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status", "type"}, // success/failure, signup/login
	)

	// Notes Metrics
	NotesOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_operations_total",
			Help: "Total number of note operations",
		},
		[]string{"operation"}, // create, update, delete, favorite, archive
	)

	// Share Metrics
	SharesResolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shares_resolved_total",
			Help: "Total number of public share resolutions",
		},
		[]string{"status"}, // hit/miss
	)
)

// MetricsMiddleware records request counts, latency, and in-flight
// requests. Paths are recorded by route template, not raw URL, to
// bound label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ActiveRequests.Inc()

		c.Next()

		ActiveRequests.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
