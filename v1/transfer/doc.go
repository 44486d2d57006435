// Package transfer rewrites schema identifiers on Kafka records moving
// between clusters that run separate schema registries.
//
// Records produced with a registry-backed serializer carry a wire-format
// envelope: a magic byte, a 4-byte schema identifier, and the serialized
// payload. Identifiers are only meaningful within the registry that issued
// them, so records copied verbatim to another cluster point at the wrong
// (or a missing) schema. This package fixes the records in flight: the
// first time an identifier is seen, the schema behind it is fetched from
// the source registry and registered with the destination registry, and
// from then on every record carrying that identifier is rewritten to the
// destination's identifier.
//
// Core Features:
//   - Confluent wire-format envelope decoding and in-place identifier rewrite
//   - First-sight schema copy from source to destination registry
//   - Bounded LRU cache of completed transcriptions (no repeated round trips)
//   - Topic ignore rules (regex with literal fallback) for pass-through topics
//   - Optional key transfer and header forwarding
//   - Pluggable destination subject naming (topic, record, or combined)
//
// Basic Usage:
//
//	import (
//		"github.com/Aleph-Alpha/schema-transfer/v1/schema_registry"
//		"github.com/Aleph-Alpha/schema-transfer/v1/transfer"
//	)
//
//	source, err := schema_registry.NewClient(schema_registry.Config{
//		URLs: []string{"http://source-registry:8081"},
//	})
//	if err != nil {
//		return err
//	}
//	dest, err := schema_registry.NewClient(schema_registry.Config{
//		URLs: []string{"http://dest-registry:8081"},
//	})
//	if err != nil {
//		return err
//	}
//
//	transform, err := transfer.NewTransform(transfer.DefaultConfig(), source, dest)
//	if err != nil {
//		return err
//	}
//	defer transform.Close()
//
//	out, err := transform.Apply(ctx, transfer.Record{
//		Topic: "orders",
//		Key:   keyBytes,
//		Value: valueBytes,
//	})
//	if err != nil {
//		var transformErr *transfer.TransformError
//		if errors.As(err, &transformErr) {
//			log.Error("Record failed", err, map[string]interface{}{
//				"topic": transformErr.Topic,
//				"part":  string(transformErr.Part),
//			})
//		}
//		return err
//	}
//
// Error Handling:
//
// Apply fails the whole record on the first problem and wraps the cause in
// a *TransformError carrying the topic and the part (key or value) that was
// being rewritten. The cause can be classified with the package sentinels:
//
//	wireformat.IsMalformed(err)                 // envelope too short or wrong magic
//	transfer.IsUnsupportedShapeError(err)       // part present but not bytes
//	transfer.IsSchemaNotFoundError(err)         // source registry has no such schema
//	transfer.IsSourceFetchError(err)            // source registry unreachable or failing
//	transfer.IsDestinationRegisterError(err)    // destination registry rejected the schema
//
// Nothing is retried inside the transform; the caller decides whether a
// failed record is skipped, retried, or stops the pipeline.
//
// Caching:
//
// Completed transcriptions are cached by source identifier, so a topic's
// steady state costs no registry traffic at all. Only successes are cached;
// a missing schema is looked up again on the next record that references
// it, which makes late schema registration on the source side recoverable
// without a restart. The cache is bounded (SchemaCapacity, default 100) and
// evicts the least recently used entry; an evicted identifier is simply
// transcribed again, registries are idempotent for known schemas.
//
// FX Module Integration:
//
// This package provides a fx module for easy integration:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    transfer.FXModule,
//	    // provide transfer.Config plus the two named registries,
//	    // see FXModule documentation
//	)
//	app.Run()
//
// Thread Safety:
//
// Apply is safe for concurrent use by multiple goroutines. Two goroutines
// hitting the same uncached identifier at once may both copy the schema;
// registries hand out one identifier per schema, so both arrive at the same
// result.
package transfer
