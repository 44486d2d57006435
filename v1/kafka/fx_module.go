package kafka

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/schema-transfer/v1/observability"
)

// FXModule is an fx.Module that provides and configures the Kafka client.
// This module registers the Kafka client with the Fx dependency injection
// framework, making it available to other components in the application.
//
// The module provides:
//  1. *KafkaClient (concrete type) for direct use
//  2. Client interface for dependency injection
//  3. Lifecycle management for graceful shutdown
//
// Usage:
//
//	app := fx.New(
//	    kafka.FXModule,
//	    fx.Provide(
//	        func() kafka.Config {
//	            return kafka.Config{
//	                Brokers: []string{"localhost:9092"},
//	                Topic:   "events",
//	                GroupID: "my-consumer-group",
//	                IsConsumer: true,
//	            }
//	        },
//	    ),
//	)
//
// Applications that talk to more than one cluster (such as the relay, which
// consumes from a source cluster and produces to a destination cluster)
// construct their clients directly with NewClient instead of using this
// module.
var FXModule = fx.Module("kafka",
	fx.Provide(
		NewClientWithDI, // Provides *KafkaClient
		// Also provide the Client interface
		fx.Annotate(
			func(c *KafkaClient) Client { return c },
			fx.As(new(Client)),
		),
	),
	fx.Invoke(RegisterKafkaLifecycle),
)

// KafkaParams groups the dependencies needed to create a Kafka client
type KafkaParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI creates a new Kafka client using dependency injection.
// This function is designed to be used with Uber's fx dependency injection
// framework where dependencies are automatically provided via the
// KafkaParams struct.
func NewClientWithDI(params KafkaParams) (*KafkaClient, error) {
	cfg := params.Config

	// Inject logger if provided and not already set explicitly
	if cfg.Logger == nil && params.Logger != nil {
		cfg.Logger = params.Logger
	}

	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	// Inject observer if provided
	if params.Observer != nil {
		client = client.WithObserver(params.Observer)
	}

	return client, nil
}

// KafkaLifecycleParams groups the dependencies needed for Kafka lifecycle management
type KafkaLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *KafkaClient
}

// RegisterKafkaLifecycle registers the Kafka client with the fx lifecycle
// system so the reader and writer are closed on application shutdown.
func RegisterKafkaLifecycle(params KafkaLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return params.Client.GracefulShutdown()
		},
	})
}
