package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/Aleph-Alpha/schema-transfer/v1/schema_registry"
	"github.com/Aleph-Alpha/schema-transfer/v1/wireformat"
)

// Apply transforms a single record for delivery to the destination cluster.
//
// Records from ignored topics are returned completely unmodified. For all
// other records the value is rewritten unconditionally and the key only
// when TransferKeys is set: the schema identifier inside each wire-format
// envelope is replaced with the identifier the destination registry
// assigned to the same schema. Nil parts pass through; parts that are
// present but not byte-shaped fail the record.
//
// Any failure aborts the whole record and is returned as a *TransformError
// naming the topic and the part being rewritten. Apply never retries;
// retry policy belongs to the caller.
func (t *Transform) Apply(ctx context.Context, record Record) (Record, error) {
	if t.closed.Load() {
		return Record{}, ErrClosed
	}

	start := time.Now()

	if t.filter.ShouldIgnore(record.Topic) {
		t.observeApply(start, record.Topic, "ignored", nil)
		return record, nil
	}

	out := record
	if t.cfg.TransferKeys {
		if err := t.rewritePart(ctx, &out, PartKey); err != nil {
			t.observeApply(start, record.Topic, "error", err)
			return Record{}, err
		}
	}
	if err := t.rewritePart(ctx, &out, PartValue); err != nil {
		t.observeApply(start, record.Topic, "error", err)
		return Record{}, err
	}

	if !t.cfg.IncludeHeaders {
		out.Headers = nil
	}

	t.observeApply(start, record.Topic, "transformed", nil)
	return out, nil
}

// rewritePart rewrites the schema identifier of one record part in a fresh
// buffer. The incoming record's buffers are never mutated.
func (t *Transform) rewritePart(ctx context.Context, record *Record, part Part) error {
	content := record.part(part)
	if content == nil {
		return nil
	}

	buf, ok := content.([]byte)
	if !ok {
		return &TransformError{
			Topic: record.Topic,
			Part:  part,
			Err:   fmt.Errorf("%w: got %T", ErrUnsupportedShape, content),
		}
	}
	if buf == nil {
		return nil
	}

	sourceID, err := wireformat.DecodeSchemaID(buf)
	if err != nil {
		return &TransformError{Topic: record.Topic, Part: part, Err: err}
	}

	destID, err := t.transcribe(ctx, sourceID, record.Topic, part == PartKey)
	if err != nil {
		return &TransformError{Topic: record.Topic, Part: part, Err: err}
	}

	rewritten := make([]byte, len(buf))
	copy(rewritten, buf)
	if err := wireformat.SetSchemaID(rewritten, destID); err != nil {
		return &TransformError{Topic: record.Topic, Part: part, Err: err}
	}

	record.setPart(part, rewritten)
	return nil
}

// transcribe resolves the destination identifier for the schema the source
// registry knows under sourceID, copying the schema over on first sight.
//
// Two goroutines racing on the same uncached identifier may both fetch and
// register; registries assign one identifier per schema, so both arrive at
// the same result and the second cache write is a no-op in effect.
func (t *Transform) transcribe(ctx context.Context, sourceID int32, topic string, isKey bool) (int32, error) {
	if cached, ok := t.cache.Get(sourceID); ok {
		return cached.DestinationID, nil
	}

	start := time.Now()

	schema, err := t.source.GetSchemaByID(ctx, int(sourceID))
	if err != nil {
		t.observeTranscription(start, topic, sourceID, err)
		if schema_registry.IsNotFound(err) {
			t.logWarn(ctx, "Schema not found in source registry", err, map[string]interface{}{
				"schema_id": sourceID,
				"topic":     topic,
			})
			return 0, fmt.Errorf("%w: id %d: %w", ErrSchemaNotFound, sourceID, err)
		}
		t.logError(ctx, "Failed to fetch schema from source registry", err, map[string]interface{}{
			"schema_id": sourceID,
			"topic":     topic,
		})
		return 0, fmt.Errorf("%w: id %d: %w", ErrSourceFetch, sourceID, err)
	}

	subject := t.cfg.SubjectStrategy.SubjectName(topic, isKey, schema)

	destID, err := t.dest.RegisterSchema(ctx, subject, schema)
	if err != nil {
		t.observeTranscription(start, topic, sourceID, err)
		t.logError(ctx, "Failed to register schema with destination registry", err, map[string]interface{}{
			"schema_id": sourceID,
			"subject":   subject,
			"topic":     topic,
		})
		return 0, fmt.Errorf("%w: subject %q: %w", ErrDestinationRegister, subject, err)
	}

	t.cache.Put(sourceID, SchemaTranscription{DestinationID: int32(destID), Schema: schema})
	t.observeTranscription(start, topic, sourceID, nil)
	return int32(destID), nil
}
