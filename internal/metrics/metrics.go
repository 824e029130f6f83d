package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// TVMaze lookup metrics
var (
	TvMazeRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvmaze_requests_total",
			Help: "Total number of TVMaze lookups by operation and outcome.",
		},
		[]string{"operation", "status"},
	)

	TvMazeRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tvmaze_request_duration_seconds",
			Help:    "Duration of TVMaze lookups.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// Detail panel metrics
var (
	PanelTogglesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panel_toggles_total",
			Help: "Total number of detail panel transitions.",
		},
		[]string{"panel", "transition"},
	)
)

// HTTP server metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served.",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests served.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

// Outcome labels
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Panel transition labels
const (
	TransitionOpen  = "open"
	TransitionClose = "close"
	TransitionStale = "stale"
)

func init() {
	prometheus.MustRegister(
		TvMazeRequestsTotal,
		TvMazeRequestDuration,
		PanelTogglesTotal,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}
