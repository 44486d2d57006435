// Package relay moves records from one Kafka cluster to another, rewriting
// each record's schema identifiers on the way so that the copies reference
// the destination's schema registry instead of the source's.
//
// The relay is the host side of the pipeline: it owns the consume, produce
// and commit mechanics, while the actual record rewriting is delegated to a
// transfer.Transformer. Topic names are preserved, so a record read from
// "orders" on the source cluster is produced to "orders" on the destination
// cluster.
//
// # Delivery Semantics
//
// Offsets are committed on the source only after the transformed record has
// been produced to the destination. A crash between produce and commit
// replays the record, so delivery is at least once; duplicate schema
// registrations are harmless because registries return the same identifier
// for an identical subject and schema.
//
// # Basic Usage
//
//	source, err := kafka.NewClient(kafka.Config{
//	    Brokers:    []string{"source:9092"},
//	    Topic:      "orders",
//	    GroupID:    "schema-transfer",
//	    IsConsumer: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.GracefulShutdown()
//
//	// No fixed topic: records are routed to the topic they came from.
//	dest, err := kafka.NewClient(kafka.Config{
//	    Brokers: []string{"destination:9092"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dest.GracefulShutdown()
//
//	r, err := relay.NewRelay(relay.Config{Workers: 4}, source, dest, transform)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := r.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Run blocks until the context is cancelled, the source shuts down, or the
// pipeline fails.
//
// # Error Policy
//
// A record the transform rejects, because its payload is malformed or its
// schema cannot be copied, is handled according to Config.OnError:
// OnErrorFail (the default) stops the pipeline and surfaces the failure from
// Run; OnErrorSkip logs the record, commits its offset and continues.
// Transform failures carry a *RecordError identifying the record by topic,
// partition and offset; IsRecordError extracts it. Fetch, produce and
// commit failures always stop the pipeline regardless of policy.
//
// # Ordering
//
// All workers share one consumer. With Workers set to 1 the relay preserves
// the source's per-partition record order on the destination; with more
// workers, records from the same partition may be produced out of order.
// Run more relay instances in the same consumer group instead when ordering
// matters.
//
// # FX Integration
//
// The package provides an FXModule that runs the pipeline for the lifetime
// of an fx application. See FXModule for how to provide the named source
// and destination clients.
package relay
