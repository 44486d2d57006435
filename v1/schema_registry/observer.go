package schema_registry

import (
	"time"

	"github.com/Aleph-Alpha/schema-transfer/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
// This is used internally to track registry operations for metrics and tracing.
//
// Notes:
//   - resource: the subject or schema ID being operated on
//   - size: the schema text length in bytes, where applicable
func (c *Client) observeOperation(operation, resource string, duration time.Duration, err error, size int64) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component: "schema_registry",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
		Size:      size,
	})
}
