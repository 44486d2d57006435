package relay

import (
	"context"
	"fmt"

	"github.com/Aleph-Alpha/schema-transfer/v1/observability"
	"github.com/Aleph-Alpha/schema-transfer/v1/transfer"
)

// Relay pumps records from a source cluster to a destination cluster,
// pushing every record through a transform on the way. Offsets are
// committed on the source only after the transformed record has been
// produced to the destination, so a crash replays records instead of
// losing them.
//
// Relay implements the Runner interface.
type Relay struct {
	// cfg stores the configuration for this relay
	cfg Config

	// consumer is the record source
	consumer Consumer

	// producer is the record sink
	producer Producer

	// transform rewrites each record between fetch and produce
	transform transfer.Transformer

	// logger is used for structured logging (optional)
	logger Logger

	// observer provides optional observability hooks for tracking records
	observer observability.Observer
}

// NewRelay creates a Relay moving records from consumer to producer through
// transform. Returns the concrete *Relay type.
//
// Example:
//
//	r, err := relay.NewRelay(relay.Config{Workers: 4}, source, dest, transform)
//	if err != nil {
//	    return err
//	}
//	if err := r.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
func NewRelay(cfg Config, consumer Consumer, producer Producer, transform transfer.Transformer) (*Relay, error) {
	if consumer == nil {
		return nil, ErrConsumerRequired
	}
	if producer == nil {
		return nil, ErrProducerRequired
	}
	if transform == nil {
		return nil, ErrTransformerRequired
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
	switch cfg.OnError {
	case "":
		cfg.OnError = OnErrorFail
	case OnErrorFail, OnErrorSkip:
	default:
		return nil, fmt.Errorf("unsupported on-error policy %q", cfg.OnError)
	}

	return &Relay{
		cfg:       cfg,
		consumer:  consumer,
		producer:  producer,
		transform: transform,
	}, nil
}

// WithObserver sets the observer for this relay and returns the relay for
// method chaining. The observer is notified of every record outcome.
func (r *Relay) WithObserver(observer observability.Observer) *Relay {
	r.observer = observer
	return r
}

// WithLogger sets the logger for this relay and returns the relay for
// method chaining.
func (r *Relay) WithLogger(logger Logger) *Relay {
	r.logger = logger
	return r
}

// logInfo logs an info message using the configured logger if available.
func (r *Relay) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if r.logger != nil {
		r.logger.InfoWithContext(ctx, msg, nil, fields)
	}
	// Silently skip if no logger configured
}

// logError logs an error message using the configured logger if available.
func (r *Relay) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if r.logger != nil {
		r.logger.ErrorWithContext(ctx, msg, err, fields)
	}
	// Silently skip if no logger configured
}
