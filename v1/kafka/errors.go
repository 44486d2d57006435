package kafka

import "errors"

// Common Kafka client errors
var (
	// ErrClientClosed is returned when the client is used after shutdown.
	ErrClientClosed = errors.New("kafka: client is closed")

	// ErrNotProducer is returned when a produce method is called on a
	// consumer client.
	ErrNotProducer = errors.New("kafka: client is not configured as a producer")

	// ErrNotConsumer is returned when a consume method is called on a
	// producer client.
	ErrNotConsumer = errors.New("kafka: client is not configured as a consumer")
)

// IsClosedError checks if the error is a "client is closed" error.
func IsClosedError(err error) bool {
	return errors.Is(err, ErrClientClosed)
}
