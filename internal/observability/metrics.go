package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Session lifecycle metrics
	SessionLogins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "session_logins_total",
			Help: "Total number of successful logins",
		},
	)

	SessionLoginFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "session_login_failures_total",
			Help: "Total number of rejected logins",
		},
	)

	SessionRegistrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "session_registrations_total",
			Help: "Total number of registrations",
		},
	)

	SessionsRestored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_restored_total",
			Help: "Total number of sessions restored from the vault at startup",
		},
	)

	// Database metrics
	DBConnectionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of open database connections",
		},
	)

	DBConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Number of database connections currently in use",
		},
	)
)
