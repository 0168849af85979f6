// Package metrics provides observability for the validation module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for validation operations.
type Metrics struct {
	// Validation outcomes by country, operation, and outcome ("ok" or the
	// rejection kind).
	Outcomes *prometheus.CounterVec

	// Validation latency by country and operation.
	Duration *prometheus.HistogramVec
}

// New creates and registers all validation metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "verid_validations_total",
			Help: "Total NID validation attempts by country, operation, and outcome",
		}, []string{"country", "operation", "outcome"}),

		Duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "verid_validation_duration_seconds",
			Help:    "Duration of NID validation operations",
			Buckets: []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001},
		}, []string{"country", "operation"}),
	}
}

// IncrementOutcome records one validation attempt.
func (m *Metrics) IncrementOutcome(country, operation, outcome string) {
	if m != nil {
		m.Outcomes.WithLabelValues(country, operation, outcome).Inc()
	}
}

// ObserveDuration records how long a validation took.
func (m *Metrics) ObserveDuration(country, operation string, d time.Duration) {
	if m != nil {
		m.Duration.WithLabelValues(country, operation).Observe(d.Seconds())
	}
}
