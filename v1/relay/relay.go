package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	kafkaclient "github.com/Aleph-Alpha/schema-transfer/v1/kafka"
)

// The kafka package's client feeds both ends of the pipeline.
var (
	_ Consumer = (*kafkaclient.KafkaClient)(nil)
	_ Producer = (*kafkaclient.KafkaClient)(nil)
)

// Run starts the configured number of pipeline workers and blocks until the
// context is cancelled, the source shuts down, or the pipeline fails. On
// cancellation and clean shutdown Run returns nil.
//
// Workers share one consumer, so partition order is preserved only with a
// single worker. With more workers, records from the same partition may be
// produced out of order.
func (r *Relay) Run(ctx context.Context) error {
	r.logInfo(ctx, "Starting relay", map[string]interface{}{
		"workers":  r.cfg.Workers,
		"on_error": r.cfg.OnError,
	})

	group, ctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Workers; i++ {
		group.Go(func() error {
			return r.worker(ctx)
		})
	}
	err := group.Wait()
	if err != nil {
		r.logError(context.Background(), "Relay stopped after failure", err, nil)
		return err
	}
	r.logInfo(context.Background(), "Relay stopped", nil)
	return nil
}

// worker runs the fetch, transform, produce, commit loop until the context
// is cancelled or a failure stops the pipeline.
func (r *Relay) worker(ctx context.Context) error {
	for {
		msg, err := r.consumer.FetchMessage(ctx)
		if err != nil {
			if isShutdownError(err) {
				return nil
			}
			return fmt.Errorf("relay: fetching record: %w", err)
		}

		start := time.Now()

		if err := r.process(ctx, msg); err != nil {
			if _, skippable := IsRecordError(err); skippable && r.cfg.OnError == OnErrorSkip {
				r.logError(ctx, "Skipping record that could not be transformed", err, map[string]interface{}{
					"topic":     msg.Topic,
					"partition": msg.Partition,
					"offset":    msg.Offset,
				})
				r.observeRecord(start, msg.Topic, "skipped", err)
				if err := r.consumer.CommitMessages(ctx, msg); err != nil {
					return fmt.Errorf("relay: committing skipped record: %w", err)
				}
				continue
			}
			r.observeRecord(start, msg.Topic, "failed", err)
			return err
		}

		if err := r.consumer.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("relay: committing record: %w", err)
		}
		r.observeRecord(start, msg.Topic, "transferred", nil)
	}
}

// process pushes one record through the transform and produces the result.
// Transform failures come back as *RecordError so the caller can apply the
// on-error policy; produce failures always stop the pipeline.
func (r *Relay) process(ctx context.Context, msg kafka.Message) error {
	record, err := r.transform.Apply(ctx, recordFromMessage(msg))
	if err != nil {
		return &RecordError{Topic: msg.Topic, Partition: msg.Partition, Offset: msg.Offset, Err: err}
	}

	out, err := messageFromRecord(record)
	if err != nil {
		return &RecordError{Topic: msg.Topic, Partition: msg.Partition, Offset: msg.Offset, Err: err}
	}

	if err := r.producer.PublishMessages(ctx, out); err != nil {
		return fmt.Errorf("relay: producing record from topic %q: %w", msg.Topic, err)
	}
	return nil
}

// isShutdownError reports whether err means the context was cancelled or the
// source was shut down, rather than a broker problem. A closed reader
// surfaces as io.EOF.
func isShutdownError(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, kafka.ErrGroupClosed) ||
		kafkaclient.IsClosedError(err)
}
