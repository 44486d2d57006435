package transfer

import "context"

// Transformer is the interface for record transformation operations.
// This interface allows for mocking in tests and provides a clean
// abstraction for the host pipeline moving records between clusters.
//
// Transform is the default implementation.
type Transformer interface {
	// Apply transforms a single record for delivery to the destination
	// cluster. Records from ignored topics come back unmodified; any
	// failure aborts the record with a *TransformError.
	Apply(ctx context.Context, record Record) (Record, error)

	// Close releases the transform. Apply returns ErrClosed afterwards.
	Close() error
}
