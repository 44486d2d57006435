package metrics

// Config defines the configuration structure for the metrics server.
type Config struct {
	// Address is the listen address for the HTTP server exposing /metrics,
	// e.g. ":9090" or "127.0.0.1:9090".
	// Default: ":9090"
	Address string

	// ServiceName is applied as a constant "service" label to every metric
	// registered by this instance. It identifies the emitting service when
	// metrics from multiple services are aggregated.
	ServiceName string

	// EnableDefaultCollectors controls whether the standard Go runtime,
	// process and build info collectors are registered alongside the
	// application metrics.
	// Default: false
	EnableDefaultCollectors bool
}
