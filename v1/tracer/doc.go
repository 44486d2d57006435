// Package tracer provides distributed tracing functionality using OpenTelemetry.
//
// The tracer package offers a simplified interface for implementing distributed tracing
// in Go applications. It abstracts away the complexity of OpenTelemetry to provide
// a clean, easy-to-use API for creating and managing trace spans.
//
// Core Features:
//   - Simple span creation and management
//   - Error recording and status tracking
//   - Customizable span attributes
//   - Cross-service trace context propagation
//   - Integration with OpenTelemetry backends
//
// Basic Usage:
//
//	import (
//		"context"
//		"github.com/Aleph-Alpha/schema-transfer/v1/logger"
//		"github.com/Aleph-Alpha/schema-transfer/v1/tracer"
//	)
//
//	// Create a logger
//	log := logger.NewLoggerClient(logger.Config{Level: "info"})
//
//	// Create a tracer
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "schema-transfer",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//
//	// Create a span
//	ctx, span := tracerClient.StartSpan(ctx, "transfer-record")
//	defer span.End()
//
//	// Add attributes to the span
//	tracerClient.SetAttributes(span, map[string]interface{}{
//		"topic":     "orders",
//		"partition": 3,
//	})
//
//	// Record errors
//	if err != nil {
//		tracerClient.RecordErrorOnSpan(span, err)
//		return err
//	}
//
// Distributed Tracing Across Services:
//
//	// In the sending service
//	ctx, span := tracerClient.StartSpan(ctx, "send-request")
//	defer span.End()
//
//	// Extract trace context for an outgoing request
//	traceHeaders := tracerClient.GetCarrier(ctx)
//	for key, value := range traceHeaders {
//		req.Header.Set(key, value)
//	}
//
//	// In the receiving service
//	ctx = tracerClient.SetCarrierOnContext(r.Context(), headers)
//
// When export is enabled, spans are shipped via OTLP over HTTP to the endpoint
// configured through the standard OTEL_EXPORTER_OTLP_* environment variables.
//
// # FX Module Integration
//
// The package ships an FXModule that provides the *Tracer and registers a
// shutdown hook which flushes pending spans on application stop:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config {
//	        return tracer.Config{ServiceName: "schema-transfer", AppEnv: "production", EnableExport: true}
//	    }),
//	)
package tracer
