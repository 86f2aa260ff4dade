// Package slogsink backs the scope package with Go's log/slog: scopes
// bound into a Sink surface as attributes on every record emitted by a
// logger built over that sink.
//
// # Architecture
//
// Sink keeps an ordered registry of live bindings, each holding a
// snapshot of the properties it was bound with. Handler decorates any
// slog.Handler and, on every Handle call, flattens the live bindings
// into attributes — later bindings shadow earlier ones on key
// collisions — before delegating to the wrapped handler. Releasing a
// binding's handle deregisters it, so records emitted afterwards no
// longer carry its properties.
//
// The factory New assembles the usual chain (text or JSON handler,
// static attributes, then the sink-injecting Handler) and returns the
// logger together with its Sink.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/logctx/pkg/scope"
//	    "github.com/dmitrymomot/logctx/pkg/slogsink"
//	)
//
//	log, sink := slogsink.New(slogsink.WithLevel(slog.LevelDebug))
//
//	s := scope.BeginOperation(sink, "Import", scope.P("batch_id", 7))
//	defer s.Release()
//
//	log.Info("row processed") // record carries operation, batch_id,
//	                          // and the correlation trace
//
// # Configuration
//
// NewFromEnv reads LOG_LEVEL and LOG_FORMAT (preloading a .env file
// once when present) and returns a configured logger and sink:
//
//	log, sink, err := slogsink.NewFromEnv()
//
// # Error Handling
//
// The package exposes three sentinel errors, matchable with errors.Is:
// ErrParseConfig, ErrInvalidLevel, ErrInvalidFormat. The factory New
// panics only on a programmer error (WithFormat with an unknown
// format), enforcing fail-fast initialization.
package slogsink
