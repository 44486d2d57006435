package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Aleph-Alpha/schema-transfer/v1/observability"
)

func newTestMetrics() *Metrics {
	return NewMetrics(Config{ServiceName: "test"})
}

func TestNewMetricsDefaultAddress(t *testing.T) {
	m := newTestMetrics()
	if m.Server.Addr != ":9090" {
		t.Errorf("expected default address :9090, got %q", m.Server.Addr)
	}
}

func TestIncrementRecords(t *testing.T) {
	m := newTestMetrics()

	m.IncrementRecords("orders", "transferred")
	m.IncrementRecords("orders", "transferred")
	m.IncrementRecords("orders", "failed")

	transferred := testutil.ToFloat64(m.recordsTotal.WithLabelValues("orders", "transferred"))
	if transferred != 2 {
		t.Errorf("expected 2 transferred records, got %v", transferred)
	}
	failed := testutil.ToFloat64(m.recordsTotal.WithLabelValues("orders", "failed"))
	if failed != 1 {
		t.Errorf("expected 1 failed record, got %v", failed)
	}
}

func TestSetSchemaCacheEntries(t *testing.T) {
	m := newTestMetrics()

	m.SetSchemaCacheEntries(17, "value")

	entries := testutil.ToFloat64(m.schemaCacheEntries.WithLabelValues("value"))
	if entries != 17 {
		t.Errorf("expected 17 cache entries, got %v", entries)
	}
}

func TestCreateCounterRegistersMetric(t *testing.T) {
	m := newTestMetrics()

	counter := m.CreateCounter("custom_total", "A custom counter", []string{"kind"})
	counter.WithLabelValues("a").Inc()

	if got := testutil.ToFloat64(counter.WithLabelValues("a")); got != 1 {
		t.Errorf("expected custom counter to be 1, got %v", got)
	}

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "custom_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected custom_total to be registered on the registry")
	}
}

func TestObserverRecordsSuccessAndError(t *testing.T) {
	m := newTestMetrics()
	observer := NewObserver(m)

	observer.ObserveOperation(observability.OperationContext{
		Component: "schema_registry",
		Operation: "register",
		Duration:  25 * time.Millisecond,
	})
	observer.ObserveOperation(observability.OperationContext{
		Component: "schema_registry",
		Operation: "register",
		Duration:  10 * time.Millisecond,
		Error:     errors.New("boom"),
	})

	success := testutil.ToFloat64(m.operationsTotal.WithLabelValues("schema_registry", "register", "success"))
	if success != 1 {
		t.Errorf("expected 1 successful operation, got %v", success)
	}
	failed := testutil.ToFloat64(m.operationsTotal.WithLabelValues("schema_registry", "register", "error"))
	if failed != 1 {
		t.Errorf("expected 1 failed operation, got %v", failed)
	}

	if got := testutil.CollectAndCount(m.operationDuration); got != 1 {
		t.Errorf("expected 1 duration series, got %d", got)
	}
}
