package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IncrementRecords increments the record counter for a topic with a given outcome label.
// Example: metrics.IncrementRecords("orders", "transferred")
func (m *Metrics) IncrementRecords(topic, outcome string) {
	m.recordsTotal.WithLabelValues(topic, outcome).Inc()
}

// IncrementOperations increments the operation counter for a component with a given status.
// Example: metrics.IncrementOperations("schema_registry", "register", "success")
func (m *Metrics) IncrementOperations(component, operation, status string) {
	m.operationsTotal.WithLabelValues(component, operation, status).Inc()
}

// RecordOperationDuration records the duration (in seconds) of a client operation.
// Example: defer metrics.RecordOperationDuration(time.Now(), "schema_registry", "get_schema")
func (m *Metrics) RecordOperationDuration(start time.Time, component, operation string) {
	duration := time.Since(start).Seconds()
	m.operationDuration.WithLabelValues(component, operation).Observe(duration)
}

// SetSchemaCacheEntries sets the schema cache size gauge for a record part.
// Example: metrics.SetSchemaCacheEntries(42, "value")
func (m *Metrics) SetSchemaCacheEntries(value float64, part string) {
	m.schemaCacheEntries.WithLabelValues(part).Set(value)
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.Registry.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(name, help, labels, buckets)
	m.Registry.MustRegister(hist)
	return hist
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(name, help, labels)
	m.Registry.MustRegister(gauge)
	return gauge
}

// createCounterVec defines a new CounterVec with standard options.
// Used internally by NewMetrics to maintain consistency.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
// Used internally by NewMetrics for latency tracking.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

// createGaugeVec defines a new GaugeVec safely for resource monitoring.
// Used internally by NewMetrics to track resource utilization.
func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
