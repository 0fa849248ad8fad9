package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "classbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "classbook_bookings_total",
			Help: "Total number of confirmed bookings",
		},
	)

	BookingFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classbook_booking_failures_total",
			Help: "Total number of rejected booking attempts",
		},
		[]string{"reason"},
	)

	ClassListingCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classbook_class_listing_cache_total",
			Help: "Class listing cache lookups",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking() {
	BookingsTotal.Inc()
}

func RecordBookingFailure(reason string) {
	BookingFailuresTotal.WithLabelValues(reason).Inc()
}

func RecordCacheLookup(hit bool) {
	if hit {
		ClassListingCacheHits.WithLabelValues("hit").Inc()
	} else {
		ClassListingCacheHits.WithLabelValues("miss").Inc()
	}
}
