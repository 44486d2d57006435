package observability

import "time"

// OperationContext describes a single operation performed by one of the
// clients in this module. Observers receive one OperationContext per
// operation and can derive metrics, traces, or logs from it.
type OperationContext struct {
	// Component is the package that performed the operation, e.g. "transfer",
	// "schema_registry", or "kafka".
	Component string

	// Operation is the name of the operation, e.g. "apply", "fetch",
	// "register", "produce".
	Operation string

	// Resource is the primary resource the operation touched, e.g. a topic
	// or a subject name.
	Resource string

	// SubResource is additional context, e.g. "key" or "value" for record
	// transformations.
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the error the operation returned, or nil on success.
	Error error

	// Size is the payload size in bytes where applicable, otherwise 0.
	Size int64

	// Metadata carries free-form operation details, e.g. schema ids.
	Metadata map[string]interface{}
}

// Observer receives operation notifications from clients. Implementations
// must be safe for concurrent use; clients invoke ObserveOperation from
// whatever goroutine performed the operation.
type Observer interface {
	// ObserveOperation is called once per operation, after it completed.
	ObserveOperation(ctx OperationContext)
}
