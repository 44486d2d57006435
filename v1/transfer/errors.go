package transfer

import (
	"errors"
	"fmt"
)

// Common transfer errors
var (
	// ErrUnsupportedShape is returned when a record key or value is present
	// but is not a byte sequence, so there is no wire-format envelope to
	// rewrite.
	ErrUnsupportedShape = errors.New("transfer: key or value is not byte-shaped")

	// ErrSchemaNotFound is returned when the source registry has no schema
	// under the identifier embedded in a record.
	ErrSchemaNotFound = errors.New("transfer: schema not found in source registry")

	// ErrSourceFetch is returned when looking up a schema in the source
	// registry fails for any reason other than the schema not existing.
	ErrSourceFetch = errors.New("transfer: fetching schema from source registry failed")

	// ErrDestinationRegister is returned when registering a schema with the
	// destination registry fails.
	ErrDestinationRegister = errors.New("transfer: registering schema with destination registry failed")

	// ErrClosed is returned when the transform is used after Close.
	ErrClosed = errors.New("transfer: transform is closed")
)

// TransformError is the failure of a single record transformation. It names
// the topic the record came from and the part (key or value) that was being
// rewritten, and wraps the underlying cause.
type TransformError struct {
	Topic string
	Part  Part
	Err   error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transfer: transforming %s of record from topic %q: %v", e.Part, e.Topic, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// IsUnsupportedShapeError checks if the error is a "part is not byte-shaped" error.
func IsUnsupportedShapeError(err error) bool {
	return errors.Is(err, ErrUnsupportedShape)
}

// IsSchemaNotFoundError checks if the error is a "schema missing from the
// source registry" error.
func IsSchemaNotFoundError(err error) bool {
	return errors.Is(err, ErrSchemaNotFound)
}

// IsSourceFetchError checks if the error is a source registry lookup failure.
func IsSourceFetchError(err error) bool {
	return errors.Is(err, ErrSourceFetch)
}

// IsDestinationRegisterError checks if the error is a destination registry
// registration failure.
func IsDestinationRegisterError(err error) bool {
	return errors.Is(err, ErrDestinationRegister)
}
