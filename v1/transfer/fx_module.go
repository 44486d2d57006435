package transfer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/schema-transfer/v1/observability"
	"github.com/Aleph-Alpha/schema-transfer/v1/schema_registry"
)

// FXModule is an fx.Module that provides and configures the record transform.
// This module registers the transform with the Fx dependency injection
// framework, making it available to other components in the application.
//
// The module provides:
//  1. *Transform (concrete type) for direct use
//  2. Transformer interface for dependency injection
//  3. Lifecycle management closing the transform on shutdown
//
// The transform talks to two registries, so the application must provide
// them under the names "source_registry" and "destination_registry":
//
//	app := fx.New(
//	    transfer.FXModule,
//	    fx.Provide(
//	        func() transfer.Config { return transfer.DefaultConfig() },
//	        fx.Annotate(
//	            func() (schema_registry.Registry, error) {
//	                return schema_registry.NewClient(sourceConfig)
//	            },
//	            fx.ResultTags(`name:"source_registry"`),
//	        ),
//	        fx.Annotate(
//	            func() (schema_registry.Registry, error) {
//	                return schema_registry.NewClient(destConfig)
//	            },
//	            fx.ResultTags(`name:"destination_registry"`),
//	        ),
//	    ),
//	)
var FXModule = fx.Module("transfer",
	fx.Provide(
		NewTransformWithDI, // Provides *Transform
		// Also provide the Transformer interface
		fx.Annotate(
			func(t *Transform) Transformer { return t },
			fx.As(new(Transformer)),
		),
	),
	fx.Invoke(RegisterTransformLifecycle),
)

// TransformParams groups the dependencies needed to create a Transform
type TransformParams struct {
	fx.In

	Config      Config
	Source      schema_registry.Registry `name:"source_registry"`
	Destination schema_registry.Registry `name:"destination_registry"`
	Logger      Logger                   `optional:"true"`
	Observer    observability.Observer   `optional:"true"`
}

// NewTransformWithDI creates a new Transform using dependency injection.
// This function is designed to be used with Uber's fx dependency injection
// framework where dependencies are automatically provided via the
// TransformParams struct.
func NewTransformWithDI(params TransformParams) (*Transform, error) {
	transform, err := NewTransform(params.Config, params.Source, params.Destination)
	if err != nil {
		return nil, err
	}

	// Inject logger if provided
	if params.Logger != nil {
		transform = transform.WithLogger(params.Logger)
	}

	// Inject observer if provided
	if params.Observer != nil {
		transform = transform.WithObserver(params.Observer)
	}

	return transform, nil
}

// TransformLifecycleParams groups the dependencies needed for transform lifecycle management
type TransformLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Transform *Transform
}

// RegisterTransformLifecycle registers the transform with the fx lifecycle
// system so it is closed on application shutdown.
func RegisterTransformLifecycle(params TransformLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return params.Transform.Close()
		},
	})
}
