package logger

// Log level names accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level is the minimum level a message must have to be emitted.
	// One of: "debug", "info", "warning", "error"
	// Default: "info" (any unrecognized value falls back to "info")
	Level string

	// ServiceName is attached to every log entry as the "service" field.
	// It identifies the emitting process in aggregated log streams.
	ServiceName string

	// EnableTracing controls whether the *WithContext logging methods
	// extract the active OpenTelemetry span from the context and attach
	// its trace_id and span_id to the log entry.
	// Default: false
	EnableTracing bool
}
