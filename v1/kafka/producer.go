package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publish writes one record to the configured topic. Key and value are
// written as-is; either may be nil. Headers are optional.
func (k *KafkaClient) Publish(ctx context.Context, key, value []byte, headers []kafka.Header) error {
	return k.PublishMessages(ctx, kafka.Message{
		Key:     key,
		Value:   value,
		Headers: headers,
	})
}

// PublishMessages writes raw kafka-go messages. When the client was created
// without a fixed topic, every message must carry its own Topic; with a
// fixed topic the message Topic must stay empty.
func (k *KafkaClient) PublishMessages(ctx context.Context, msgs ...kafka.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	if k.isClosed() {
		return ErrClientClosed
	}
	writer := k.getWriter()
	if writer == nil {
		return ErrNotProducer
	}

	var size int64
	for _, msg := range msgs {
		size += int64(len(msg.Value))
	}

	topic := k.cfg.Topic
	if topic == "" {
		topic = msgs[0].Topic
	}

	start := time.Now()
	err := writer.WriteMessages(ctx, msgs...)
	k.observeOperation("produce", topic, time.Since(start), err, size)
	return err
}

// getWriter returns the writer under the read lock.
func (k *KafkaClient) getWriter() *kafka.Writer {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.writer
}
