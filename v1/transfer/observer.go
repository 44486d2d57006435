package transfer

import (
	"time"

	"github.com/Aleph-Alpha/schema-transfer/v1/observability"
)

// observeApply notifies the observer of a completed record transformation.
// outcome is "transformed", "ignored", or "error".
func (t *Transform) observeApply(start time.Time, topic, outcome string, err error) {
	if t.observer == nil {
		return
	}
	t.observer.ObserveOperation(observability.OperationContext{
		Component: "transfer",
		Operation: "apply",
		Resource:  topic,
		Duration:  time.Since(start),
		Error:     err,
		Metadata: map[string]interface{}{
			"outcome": outcome,
		},
	})
}

// observeTranscription notifies the observer of a schema copy attempt.
func (t *Transform) observeTranscription(start time.Time, topic string, sourceID int32, err error) {
	if t.observer == nil {
		return
	}
	t.observer.ObserveOperation(observability.OperationContext{
		Component: "transfer",
		Operation: "transcribe",
		Resource:  topic,
		Duration:  time.Since(start),
		Error:     err,
		Metadata: map[string]interface{}{
			"source_schema_id": sourceID,
			"cache_entries":    t.cache.Len(),
		},
	})
}
