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
			Help: "Total number of HTTP requests handled",
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

	InquiriesSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inquiries_submitted_total",
			Help: "Total number of contact inquiries accepted",
		},
	)

	AdminMutationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_mutations_rejected_total",
			Help: "Total number of mutations rejected by the admin gateway",
		},
		[]string{"entity"},
	)
)
