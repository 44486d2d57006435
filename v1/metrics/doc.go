// Package metrics provides Prometheus-based monitoring and metrics collection
// functionality for Go applications.
//
// The metrics package is designed to provide a standardized observability
// approach with features such as configurable HTTP endpoints for metrics exposure,
// automatic runtime instrumentation, and integration with the Fx dependency
// injection framework for easy incorporation into Aleph Alpha services.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: Defines the contract for metrics operations
//   - Metrics struct: Concrete implementation of the MetricsCollector interface
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - Observer adapter: Bridges observability.OperationContext onto the built-in metrics
//   - FX module: Provides *Metrics and an observability.Observer for dependency injection
//
// Core Features:
//   - Exposes a configurable /metrics endpoint for Prometheus scraping
//   - Integration with go.uber.org/fx for automatic lifecycle management
//   - Automatic registration of Go runtime and process-level metrics
//   - Support for custom metric registration (counters, gauges, histograms)
//   - Built-in metrics for the transfer pipeline (records, operations, cache size)
//   - Graceful startup and shutdown via Fx lifecycle hooks
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create metrics directly:
//
//	import "github.com/Aleph-Alpha/schema-transfer/v1/metrics"
//
//	// Create a new metrics server (returns concrete *Metrics)
//	cfg := metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		ServiceName:             "schema-transfer",
//	}
//
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
//
//	// Use built-in metrics
//	m.IncrementRecords("orders", "transferred")
//	defer m.RecordOperationDuration(time.Now(), "schema_registry", "register")
//
// # FX Module Integration
//
// For production applications using Uber's fx, use the FXModule which provides
// both the concrete type and the observer adapter:
//
//	import (
//		"go.uber.org/fx"
//		"github.com/Aleph-Alpha/schema-transfer/v1/logger"
//		"github.com/Aleph-Alpha/schema-transfer/v1/metrics"
//	)
//
//	app := fx.New(
//		logger.FXModule,  // provides the logger used by lifecycle hooks
//		metrics.FXModule, // Provides *Metrics and observability.Observer
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{
//				Address:                 ":9090",
//				EnableDefaultCollectors: true,
//				ServiceName:             "schema-transfer",
//			}
//		}),
//		fx.Invoke(func(m *metrics.Metrics) {
//			m.IncrementRecords("orders", "transferred")
//		}),
//	)
//	app.Run()
//
// # Observer Integration
//
// Client packages in this module (kafka, schema_registry) accept an
// observability.Observer. The Observer provided by this package records every
// observed operation on the operations counter and the duration histogram:
//
//	m := metrics.NewMetrics(cfg)
//	registry = registry.WithObserver(metrics.NewObserver(m))
//
// When the FX module is used, the observer is injected automatically into any
// client declaring an optional observability.Observer dependency.
//
// # Custom Metrics
//
// Applications can register additional Prometheus metrics using the exposed
// Registry. For example:
//
//	transferLag := prometheus.NewGaugeVec(
//	    prometheus.GaugeOpts{
//	        Name: "transfer_lag_records",
//	        Help: "Records between the source head offset and the relay position.",
//	    },
//	    []string{"topic", "partition"},
//	)
//	m.Registry.MustRegister(transferLag)
//
// # Default Collectors
//
// When EnableDefaultCollectors is true, the package automatically registers
// the following collectors:
//   - Go runtime metrics (goroutines, GC stats, heap usage)
//   - Process metrics (CPU time, memory, file descriptors)
//
// These metrics provide deep visibility into service performance and stability.
//
// # Thread Safety
//
// All methods on the Metrics struct and Prometheus collectors are safe for
// concurrent use by multiple goroutines.
package metrics
