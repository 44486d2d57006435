// Package observability defines the observer contract shared by all client
// packages in this module.
//
// Clients (transfer, schema_registry, kafka, relay) notify an optional
// Observer about every operation they perform. The observer decides what to
// do with the notification: count it, time it, trace it, or ignore it. This
// keeps the clients free of any direct metrics or tracing dependency while
// still making every operation observable.
//
// Attaching an observer:
//
//	transform, err := transfer.NewTransform(cfg, source, dest)
//	if err != nil {
//	    return err
//	}
//	transform = transform.WithObserver(myObserver)
//
// Or via fx, where any provided observability.Observer is injected
// automatically into all clients that accept one. The metrics module already
// provides an Observer, so including it is enough:
//
//	app := fx.New(
//	    transfer.FXModule,
//	    metrics.FXModule,
//	)
//
// The metrics package ships a ready-made Observer that converts operation
// notifications into Prometheus series; see metrics.NewObserver.
package observability
