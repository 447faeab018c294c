package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the API.
type Metrics struct {
	ObservationsSubmitted prometheus.Counter
	ObservationsCleared   prometheus.Counter
	StoreSize             prometheus.Gauge

	ScoreRequests *prometheus.CounterVec // labels: source={observed,simulated,no_data}
	RoutePlans    *prometheus.CounterVec // labels: strategy={catalog,simulated}

	RequestDuration *prometheus.HistogramVec // labels: method, route, status

	// Kafka side-channel metrics.
	KafkaPublishes *prometheus.CounterVec // labels: outcome={success,error}
	KafkaEnabled   prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ObservationsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "transit_traffic",
			Name:      "observations_submitted_total",
			Help:      "Total traffic observations accepted into the store.",
		}),
		ObservationsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "transit_traffic",
			Name:      "observations_cleared_total",
			Help:      "Total observations dropped by bulk clears.",
		}),
		StoreSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "transit_traffic",
			Name:      "store_size",
			Help:      "Current number of stored observations.",
		}),
		ScoreRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transit_traffic",
			Name:      "score_requests_total",
			Help:      "Score lookups by result source.",
		}, []string{"source"}),
		RoutePlans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transit_traffic",
			Name:      "route_plans_total",
			Help:      "Route plans produced by strategy.",
		}, []string{"strategy"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "transit_traffic",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration by method, route, and status.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "route", "status"}),
		KafkaPublishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transit_traffic",
			Name:      "kafka_publishes_total",
			Help:      "Observation events published to Kafka by outcome.",
		}, []string{"outcome"}),
		KafkaEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "transit_traffic",
			Name:      "kafka_enabled",
			Help:      "1 when the observation event publisher is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.ObservationsSubmitted,
		m.ObservationsCleared,
		m.StoreSize,
		m.ScoreRequests,
		m.RoutePlans,
		m.RequestDuration,
		m.KafkaPublishes,
		m.KafkaEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ObservationsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "transit_traffic", Name: "observations_submitted_total"}),
		ObservationsCleared:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "transit_traffic", Name: "observations_cleared_total"}),
		StoreSize:             prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "transit_traffic", Name: "store_size"}),
		ScoreRequests:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "transit_traffic", Name: "score_requests_total"}, []string{"source"}),
		RoutePlans:            prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "transit_traffic", Name: "route_plans_total"}, []string{"strategy"}),
		RequestDuration:       prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "transit_traffic", Name: "request_duration_seconds"}, []string{"method", "route", "status"}),
		KafkaPublishes:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "transit_traffic", Name: "kafka_publishes_total"}, []string{"outcome"}),
		KafkaEnabled:          prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "transit_traffic", Name: "kafka_enabled"}),
	}
}
