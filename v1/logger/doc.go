// Package logger provides structured logging functionality for Go applications.
//
// The logger package is designed to provide a standardized logging approach
// with features such as log levels, contextual logging, distributed tracing integration,
// and flexible output formatting. It integrates with the fx dependency injection framework
// for easy incorporation into applications.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: Defines the contract for logging operations
//   - LoggerClient struct: Concrete implementation of the Logger interface
//   - NewLoggerClient constructor: Returns *LoggerClient (concrete type)
//   - FX module: Provides both *LoggerClient and Logger interface for dependency injection
//
// Core Features:
//   - Structured logging with key-value pairs
//   - Support for multiple log levels (Debug, Info, Warn, Error, Fatal)
//   - Context-aware logging for request tracing
//   - Distributed tracing integration with OpenTelemetry
//   - Automatic trace and span ID extraction from context
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create a logger directly:
//
//	import "github.com/Aleph-Alpha/schema-transfer/v1/logger"
//
//	// Create a new logger (returns concrete *LoggerClient)
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         "info",
//		EnableTracing: true,
//	})
//
//	// Log with structured fields (without context)
//	log.Info("Schema registered", nil, map[string]interface{}{
//		"subject":   "orders-value",
//		"schema_id": 42,
//	})
//
//	// Log with trace context (automatically includes trace_id and span_id)
//	log.InfoWithContext(ctx, "Processing record", nil, map[string]interface{}{
//		"topic": "orders",
//	})
//
// # FX Module Integration
//
// For production applications using Uber's fx, use the FXModule which provides
// both the concrete type and interface:
//
//	import (
//		"github.com/Aleph-Alpha/schema-transfer/v1/logger"
//		"go.uber.org/fx"
//	)
//
//	app := fx.New(
//		logger.FXModule, // Provides *LoggerClient and logger.Logger interface
//		fx.Provide(func() logger.Config {
//			return logger.Config{
//				Level:         "info",
//				EnableTracing: true,
//				ServiceName:   "schema-transfer",
//			}
//		}),
//		fx.Invoke(func(log *logger.LoggerClient) {
//			log.Info("Service started", nil, nil)
//		}),
//		// ... other modules
//	)
//	app.Run()
//
// # Type Aliases in Consumer Code
//
// To simplify your code and avoid tight coupling, use type aliases:
//
//	package myapp
//
//	import stdLogger "github.com/Aleph-Alpha/schema-transfer/v1/logger"
//
//	// Use type alias to reference the shared interface
//	type Logger = stdLogger.Logger
//
//	// Now use Logger throughout your codebase
//	func MyFunction(log Logger) {
//		log.Info("Processing", nil, nil)
//	}
//
// This eliminates the need for adapters and allows you to switch implementations
// by only changing the alias definition.
//
// # Tracing Integration
//
// When tracing is enabled (EnableTracing: true), the logger will automatically
// extract trace and span IDs from the context and include them in log entries.
// This provides correlation between logs and distributed traces in your observability system.
//
// The following fields are automatically added to log entries when tracing is enabled:
//   - trace_id: The OpenTelemetry trace ID
//   - span_id: The OpenTelemetry span ID
//
// To use tracing, ensure your application has OpenTelemetry configured and pass
// context with active spans to the *WithContext logging methods.
//
// # Thread Safety
//
// All methods on the Logger interface are safe for concurrent use by multiple
// goroutines.
package logger
