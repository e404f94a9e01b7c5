package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route pattern, and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration by method and route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	registrationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registration_attempts_total",
			Help: "Registration attempts by outcome",
		},
		[]string{"outcome"},
	)

	seatsTaken = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "event_seats_taken",
			Help: "Registered seats per event after the latest ledger write",
		},
		[]string{"event_id"},
	)
)

// TrackHTTPRequest records one completed HTTP request.
func TrackHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackRegistration records one registration attempt. Outcome is "registered",
// "cancelled", or a rejection reason such as "event_full".
func TrackRegistration(outcome string) {
	registrationOutcomes.WithLabelValues(outcome).Inc()
}

// TrackSeatsTaken records the current registration count for an event.
func TrackSeatsTaken(eventID string, taken int) {
	seatsTaken.WithLabelValues(eventID).Set(float64(taken))
}
