package transfer

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/Aleph-Alpha/schema-transfer/v1/observability"
	"github.com/Aleph-Alpha/schema-transfer/v1/schema_registry"
)

// Transform rewrites wire-format schema identifiers on records in flight,
// copying each referenced schema from the source registry to the
// destination registry the first time it is seen.
//
// Transform implements the Transformer interface.
type Transform struct {
	// cfg stores the configuration for this transform
	cfg Config

	// source is the registry the records' schema identifiers refer to
	source schema_registry.Registry

	// dest is the registry schemas are copied into
	dest schema_registry.Registry

	// filter decides which topics pass through untouched
	filter *IgnoreFilter

	// cache remembers completed transcriptions by source identifier
	cache *TranscriptionCache

	// logger is used for structured logging (optional)
	logger Logger

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	// closed is set once Close has been called
	closed atomic.Bool
}

// NewTransform creates a Transform copying schemas from source to dest.
// Returns the concrete *Transform type.
//
// Example:
//
//	transform, err := transfer.NewTransform(transfer.DefaultConfig(), source, dest)
//	if err != nil {
//	    return err
//	}
//	defer transform.Close()
func NewTransform(cfg Config, source, dest schema_registry.Registry) (*Transform, error) {
	if source == nil || dest == nil {
		return nil, fmt.Errorf("source and destination registries are required")
	}
	if cfg.SchemaCapacity < 0 {
		return nil, fmt.Errorf("schema capacity must be positive, got %d", cfg.SchemaCapacity)
	}
	if cfg.SchemaCapacity == 0 {
		cfg.SchemaCapacity = DefaultSchemaCapacity
	}
	if cfg.SubjectStrategy == nil {
		cfg.SubjectStrategy = TopicNameStrategy{}
	}

	return &Transform{
		cfg:    cfg,
		source: source,
		dest:   dest,
		filter: NewIgnoreFilter(cfg.IgnoreTopics, nil),
		cache:  NewTranscriptionCache(cfg.SchemaCapacity),
	}, nil
}

// WithObserver sets the observer for this transform and returns the
// transform for method chaining. The observer is notified of every record
// transformation and schema transcription.
func (t *Transform) WithObserver(observer observability.Observer) *Transform {
	t.observer = observer
	return t
}

// WithLogger sets the logger for this transform and returns the transform
// for method chaining.
func (t *Transform) WithLogger(logger Logger) *Transform {
	t.logger = logger
	// Recompile the ignore rules so degradations reach the logger.
	t.filter = NewIgnoreFilter(t.cfg.IgnoreTopics, logger)
	return t
}

// WithCache replaces the transcription cache, for callers that share one
// cache across transforms or pre-warm it. Returns the transform for method
// chaining.
func (t *Transform) WithCache(cache *TranscriptionCache) *Transform {
	if cache != nil {
		t.cache = cache
	}
	return t
}

// Cache exposes the transcription cache, mainly so callers can report its
// size.
func (t *Transform) Cache() *TranscriptionCache {
	return t.cache
}

// Close releases the transform. Apply returns ErrClosed afterwards.
func (t *Transform) Close() error {
	t.closed.Store(true)
	return nil
}

// logWarn logs a warning message using the configured logger if available.
func (t *Transform) logWarn(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if t.logger != nil {
		t.logger.WarnWithContext(ctx, msg, err, fields)
	}
	// Silently skip if no logger configured
}

// logError logs an error message using the configured logger if available.
func (t *Transform) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if t.logger != nil {
		t.logger.ErrorWithContext(ctx, msg, err, fields)
	}
	// Silently skip if no logger configured
}
