package relay

import (
	"errors"
	"fmt"
)

// ErrConsumerRequired is returned by NewRelay when no consumer is provided.
var ErrConsumerRequired = errors.New("relay: consumer is required")

// ErrProducerRequired is returned by NewRelay when no producer is provided.
var ErrProducerRequired = errors.New("relay: producer is required")

// ErrTransformerRequired is returned by NewRelay when no transformer is
// provided.
var ErrTransformerRequired = errors.New("relay: transformer is required")

// RecordError reports a record the transform rejected. It wraps the
// underlying failure and identifies the source record by topic, partition
// and offset.
type RecordError struct {
	// Topic the record was read from.
	Topic string

	// Partition the record was read from.
	Partition int

	// Offset of the record within its partition.
	Offset int64

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	return fmt.Sprintf("relay: record %s[%d]@%d: %v", e.Topic, e.Partition, e.Offset, e.Err)
}

// Unwrap exposes the underlying failure to errors.Is and errors.As.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// IsRecordError reports whether err carries a per-record failure and, if so,
// returns it. Fetch, produce and commit failures are not record errors.
func IsRecordError(err error) (*RecordError, bool) {
	var recordErr *RecordError
	if errors.As(err, &recordErr) {
		return recordErr, true
	}
	return nil, false
}
