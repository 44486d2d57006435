package kafka

import (
	"context"
	"sync"

	"github.com/segmentio/kafka-go"
)

// Client is the interface for Kafka operations. This interface allows for
// mocking in tests and provides a clean abstraction over the underlying
// reader and writer.
//
// KafkaClient is the default implementation.
type Client interface {
	// Publish writes one record to the configured topic.
	Publish(ctx context.Context, key, value []byte, headers []kafka.Header) error

	// PublishMessages writes raw kafka-go messages, with per-message topics
	// when the client has no fixed topic.
	PublishMessages(ctx context.Context, msgs ...kafka.Message) error

	// FetchMessage reads the next record without committing it.
	FetchMessage(ctx context.Context) (kafka.Message, error)

	// CommitMessages marks records as processed in the consumer group.
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error

	// Consume reads records into the returned channel until the context is
	// cancelled or the client shuts down.
	Consume(ctx context.Context, wg *sync.WaitGroup) <-chan Message

	// ConsumeParallel is Consume with multiple fetching goroutines.
	ConsumeParallel(ctx context.Context, wg *sync.WaitGroup, workers int) <-chan Message

	// GracefulShutdown closes the underlying reader and writer.
	GracefulShutdown() error
}
