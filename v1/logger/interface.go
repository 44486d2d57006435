package logger

import "context"

// Logger defines the contract for structured logging operations.
// The concrete implementation is LoggerClient; consumers should accept
// this interface so that tests can substitute their own recorder.
//
// Every method takes the message first, then an optional error (nil when
// there is none), then any number of field maps that are flattened into
// structured key-value pairs on the entry.
//
// The *WithContext variants additionally read the OpenTelemetry span from
// the context and, when tracing is enabled, attach trace_id and span_id
// to the entry so logs can be correlated with traces.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})

	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
