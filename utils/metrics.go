package utils

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medicare",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medicare",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	// BookingOutcomes counts booking flow results: booked, unavailable, error.
	BookingOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medicare",
		Name:      "bookings_total",
		Help:      "Booking attempts by outcome.",
	}, []string{"outcome"})

	// BannerActivations counts banner activation transactions by result.
	BannerActivations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medicare",
		Name:      "banner_activations_total",
		Help:      "Banner activation transactions by result.",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, BookingOutcomes, BannerActivations)
}
