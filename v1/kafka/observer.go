package kafka

import (
	"time"

	"github.com/Aleph-Alpha/schema-transfer/v1/observability"
)

// observeOperation notifies the observer of a completed client operation,
// if an observer is configured.
func (k *KafkaClient) observeOperation(operation, topic string, duration time.Duration, err error, size int64) {
	if k.observer == nil {
		return
	}
	k.observer.ObserveOperation(observability.OperationContext{
		Component: "kafka",
		Operation: operation,
		Resource:  topic,
		Duration:  duration,
		Error:     err,
		Size:      size,
	})
}
