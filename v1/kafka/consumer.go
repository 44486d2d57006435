package kafka

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// Message is a single record handed to consumers. Commit acknowledgement is
// explicit: call CommitMsg once the record is safely processed.
type Message interface {
	// Topic is the topic the record was read from.
	Topic() string

	// Partition is the partition the record was read from.
	Partition() int

	// Offset is the record's offset within its partition.
	Offset() int64

	// Key returns the raw record key, which may be nil.
	Key() []byte

	// Body returns the raw record value, which may be nil.
	Body() []byte

	// Headers returns the record headers.
	Headers() []kafka.Header

	// Header returns the headers as a string map, the shape the tracer's
	// carrier helpers consume. Later duplicate keys win.
	Header() map[string]string

	// Time is the record timestamp.
	Time() time.Time

	// CommitMsg marks the record as processed in the consumer group.
	CommitMsg() error
}

// kafkaMessage adapts a kafka-go message to the Message interface.
type kafkaMessage struct {
	msg    kafka.Message
	client *KafkaClient
}

func (m *kafkaMessage) Topic() string           { return m.msg.Topic }
func (m *kafkaMessage) Partition() int          { return m.msg.Partition }
func (m *kafkaMessage) Offset() int64           { return m.msg.Offset }
func (m *kafkaMessage) Key() []byte             { return m.msg.Key }
func (m *kafkaMessage) Body() []byte            { return m.msg.Value }
func (m *kafkaMessage) Headers() []kafka.Header { return m.msg.Headers }
func (m *kafkaMessage) Time() time.Time         { return m.msg.Time }

func (m *kafkaMessage) Header() map[string]string {
	headers := make(map[string]string, len(m.msg.Headers))
	for _, h := range m.msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	return headers
}

func (m *kafkaMessage) CommitMsg() error {
	return m.client.CommitMessages(context.Background(), m.msg)
}

// FetchMessage reads the next record without committing it. Pair with
// CommitMessages for at-least-once processing.
func (k *KafkaClient) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if k.isClosed() {
		return kafka.Message{}, ErrClientClosed
	}
	reader := k.getReader()
	if reader == nil {
		return kafka.Message{}, ErrNotConsumer
	}

	start := time.Now()
	msg, err := reader.FetchMessage(ctx)
	k.observeOperation("fetch", msg.Topic, time.Since(start), err, int64(len(msg.Value)))
	return msg, err
}

// CommitMessages marks the given records as processed in the consumer group.
func (k *KafkaClient) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	if k.isClosed() {
		return ErrClientClosed
	}
	reader := k.getReader()
	if reader == nil {
		return ErrNotConsumer
	}

	start := time.Now()
	err := reader.CommitMessages(ctx, msgs...)
	topic := ""
	if len(msgs) > 0 {
		topic = msgs[0].Topic
	}
	k.observeOperation("commit", topic, time.Since(start), err, 0)
	return err
}

// Consume reads records into the returned channel until the context is
// cancelled or the client shuts down. The channel is closed afterwards.
//
// The WaitGroup is incremented for the consumer goroutine and decremented
// when it exits, letting callers wait for a clean drain.
func (k *KafkaClient) Consume(ctx context.Context, wg *sync.WaitGroup) <-chan Message {
	return k.ConsumeParallel(ctx, wg, 1)
}

// ConsumeParallel is Consume with multiple fetching goroutines, for topics
// where a single fetch loop cannot keep up. Ordering across workers is not
// preserved; per-partition ordering within one worker is.
func (k *KafkaClient) ConsumeParallel(ctx context.Context, wg *sync.WaitGroup, workers int) <-chan Message {
	if workers < 1 {
		workers = 1
	}

	out := make(chan Message)
	var fetchers sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		fetchers.Add(1)
		go func() {
			defer wg.Done()
			defer fetchers.Done()

			for {
				msg, err := k.FetchMessage(ctx)
				if err != nil {
					if !isShutdownError(err) && k.cfg.Logger != nil {
						k.cfg.Logger.Error("Failed to fetch message", err, nil)
					}
					return
				}

				select {
				case out <- &kafkaMessage{msg: msg, client: k}:
				case <-ctx.Done():
					return
				case <-k.shutdownSignal:
					return
				}
			}
		}()
	}

	go func() {
		fetchers.Wait()
		close(out)
	}()

	return out
}

// isShutdownError reports whether err is an expected consequence of
// cancellation or shutdown rather than a broker problem. A closed reader
// surfaces as io.EOF.
func isShutdownError(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, ErrClientClosed) ||
		errors.Is(err, kafka.ErrGroupClosed) ||
		errors.Is(err, io.EOF)
}

// getReader returns the reader under the read lock.
func (k *KafkaClient) getReader() *kafka.Reader {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.reader
}
