// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)

	RosterSignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roster_signups_total",
			Help: "Total number of signup attempts by activity and outcome",
		},
		[]string{"activity", "outcome"},
	)

	RosterUnregistersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roster_unregisters_total",
			Help: "Total number of unregister attempts by activity and outcome",
		},
		[]string{"activity", "outcome"},
	)
)
