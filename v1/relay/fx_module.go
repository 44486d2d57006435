package relay

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/schema-transfer/v1/observability"
	"github.com/Aleph-Alpha/schema-transfer/v1/transfer"
)

// FXModule is an fx.Module that provides and configures the relay pipeline.
// This module registers the relay with the Fx dependency injection
// framework, making it available to other components in the application.
//
// The module provides:
//  1. *Relay (concrete type) for direct use
//  2. Runner interface for dependency injection
//  3. Lifecycle management running the pipeline for the application's lifetime
//
// The relay bridges two clusters, so the application must provide the
// consumer and producer under the names "source_kafka" and
// "destination_kafka":
//
//	app := fx.New(
//	    relay.FXModule,
//	    fx.Provide(
//	        func() relay.Config { return relay.Config{Workers: 4} },
//	        fx.Annotate(
//	            func() (relay.Consumer, error) {
//	                return kafka.NewClient(sourceConfig)
//	            },
//	            fx.ResultTags(`name:"source_kafka"`),
//	        ),
//	        fx.Annotate(
//	            func() (relay.Producer, error) {
//	                return kafka.NewClient(destConfig)
//	            },
//	            fx.ResultTags(`name:"destination_kafka"`),
//	        ),
//	    ),
//	)
var FXModule = fx.Module("relay",
	fx.Provide(
		NewRelayWithDI, // Provides *Relay
		// Also provide the Runner interface
		fx.Annotate(
			func(r *Relay) Runner { return r },
			fx.As(new(Runner)),
		),
	),
	fx.Invoke(RegisterRelayLifecycle),
)

// RelayParams groups the dependencies needed to create a Relay
type RelayParams struct {
	fx.In

	Config      Config
	Consumer    Consumer `name:"source_kafka"`
	Producer    Producer `name:"destination_kafka"`
	Transformer transfer.Transformer
	Logger      Logger                 `optional:"true"`
	Observer    observability.Observer `optional:"true"`
}

// NewRelayWithDI creates a new Relay using dependency injection.
// This function is designed to be used with Uber's fx dependency injection
// framework where dependencies are automatically provided via the
// RelayParams struct.
func NewRelayWithDI(params RelayParams) (*Relay, error) {
	r, err := NewRelay(params.Config, params.Consumer, params.Producer, params.Transformer)
	if err != nil {
		return nil, err
	}

	// Inject logger if provided
	if params.Logger != nil {
		r = r.WithLogger(params.Logger)
	}

	// Inject observer if provided
	if params.Observer != nil {
		r = r.WithObserver(params.Observer)
	}

	return r, nil
}

// RelayLifecycleParams groups the dependencies needed for relay lifecycle management
type RelayLifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Relay      *Relay
}

// RegisterRelayLifecycle starts the pipeline when the application starts and
// cancels it on shutdown. When the pipeline ends on its own, because the
// source shut down or a record failed under the fail policy, the whole
// application is asked to shut down; the pipeline's error is reported from
// the OnStop hook.
func RegisterRelayLifecycle(params RelayLifecycleParams) {
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				done <- params.Relay.Run(runCtx)
				_ = params.Shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
