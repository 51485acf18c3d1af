package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "btickets_client_requests_total",
			Help: "Total API client requests",
		},
		[]string{"operation", "outcome"},
	)

	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "btickets_client_request_duration_seconds",
			Help:    "Duration of API client requests",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"operation"},
	)

	breakerRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "btickets_client_breaker_rejections_total",
			Help: "Requests rejected by the transport circuit breaker",
		},
	)
)

// TrackRequest records one completed API call.
func TrackRequest(operation, outcome string, duration time.Duration) {
	apiRequests.WithLabelValues(operation, outcome).Inc()
	apiRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// TrackBreakerRejection records a call that never reached the network.
func TrackBreakerRejection() {
	breakerRejections.Inc()
}
