package metrics

import (
	"github.com/Aleph-Alpha/schema-transfer/v1/observability"
)

// Observer adapts the built-in Prometheus metrics to the observability.Observer
// interface so it can be attached to any client that accepts an observer.
//
// Each observed operation increments the operations counter (labelled with the
// component, operation and success/error status) and feeds the operation
// duration histogram.
type Observer struct {
	metrics *Metrics
}

// NewObserver creates an Observer backed by the given Metrics instance.
//
// Example:
//
//	m := metrics.NewMetrics(cfg)
//	client = client.WithObserver(metrics.NewObserver(m))
func NewObserver(m *Metrics) *Observer {
	return &Observer{metrics: m}
}

// ObserveOperation records a single client operation on the built-in metrics.
//
// Record-level operations reported by the relay additionally increment the
// records_processed_total counter, labelled with the source topic and the
// outcome carried in the operation metadata.
func (o *Observer) ObserveOperation(ctx observability.OperationContext) {
	status := "success"
	if ctx.Error != nil {
		status = "error"
	}

	o.metrics.operationsTotal.WithLabelValues(ctx.Component, ctx.Operation, status).Inc()
	o.metrics.operationDuration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())

	if ctx.Component == "relay" && ctx.Operation == "record" {
		if outcome, ok := ctx.Metadata["outcome"].(string); ok {
			o.metrics.IncrementRecords(ctx.Resource, outcome)
		}
	}
}
