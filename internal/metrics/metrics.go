package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the reservations API
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Business Metrics
	FlightsCreatedTotal prometheus.Counter
	FlightsUpdatedTotal prometheus.Counter
	FlightsDeletedTotal prometheus.Counter
	SearchQueriesTotal  prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservations_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reservations_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "reservations_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservations_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reservations_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		FlightsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reservations_flights_created_total",
				Help: "Total flights created",
			},
		),
		FlightsUpdatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reservations_flights_updated_total",
				Help: "Total flights updated",
			},
		),
		FlightsDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reservations_flights_deleted_total",
				Help: "Total flights deleted",
			},
		),
		SearchQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservations_search_queries_total",
				Help: "Total flexible search queries by predicate combination",
			},
			[]string{"predicates"},
		),
	}
}
