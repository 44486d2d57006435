package relay

import (
	"time"

	"github.com/Aleph-Alpha/schema-transfer/v1/observability"
)

// observeRecord notifies the observer of one record's fate. outcome is
// "transferred", "skipped", or "failed".
func (r *Relay) observeRecord(start time.Time, topic, outcome string, err error) {
	if r.observer == nil {
		return
	}
	r.observer.ObserveOperation(observability.OperationContext{
		Component: "relay",
		Operation: "record",
		Resource:  topic,
		Duration:  time.Since(start),
		Error:     err,
		Metadata: map[string]interface{}{
			"outcome": outcome,
		},
	})
}
