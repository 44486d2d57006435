package relay

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Consumer is the record source of the pipeline. It is satisfied by the
// kafka package's client when configured as a consumer.
type Consumer interface {
	// FetchMessage blocks until a record is available, the context is
	// cancelled, or the source is closed.
	FetchMessage(ctx context.Context) (kafka.Message, error)

	// CommitMessages marks the given records as processed in the consumer
	// group. The relay commits a record only after it has been produced to
	// the destination.
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Producer is the record sink of the pipeline. It is satisfied by the kafka
// package's client when configured as a producer without a fixed topic, so
// each record is routed to the topic it came from.
type Producer interface {
	PublishMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Runner is the interface the relay exposes to hosts. Run blocks until the
// context is cancelled, the source shuts down, or the pipeline fails.
type Runner interface {
	Run(ctx context.Context) error
}
