package tracer

// Config defines the configuration structure for the tracer.
type Config struct {
	// ServiceName identifies this service in trace backends.
	// It is attached to every exported span as the service.name resource attribute.
	ServiceName string

	// AppEnv is the deployment environment the service runs in,
	// e.g. "development", "staging" or "production".
	// It is attached to spans as the deployment environment resource attribute.
	AppEnv string

	// EnableExport controls whether spans are exported over OTLP/HTTP.
	// When false the tracer provider is still installed so span creation works,
	// but no spans leave the process. The OTLP endpoint is taken from the
	// standard OTEL_EXPORTER_OTLP_* environment variables.
	// Default: false
	EnableExport bool
}
