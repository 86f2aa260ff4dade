// Package scope provides a scoped, correlation-carrying logging
// context: a caller declares that everything logged inside a block of
// code should carry a set of structured properties, and the package
// keeps an external logging backend's view of those properties in sync
// while the scope is alive.
//
// # Overview
//
// A Scope is a thread-safe property container bound into a Sink — the
// backend that attaches bound properties to emitted log records. Three
// entry points open a scope:
//
//   • Begin – a root scope carrying only the correlation trace for the
//     call site that opened it.
//   • BeginChild – a scope inheriting a full value copy of a parent's
//     properties; the binder releases the parent itself once the copy
//     is complete (copy-then-release), so nested scopes can never
//     observe a half-torn-down parent.
//   • BeginOperation – a root scope pre-populated with the
//     conventional "operation" property and any supplied pairs.
//
// Every mutation (Set, SetSerialized, SetCallSite, Clear) replaces the
// scope's binding in the sink with a fresh one, so the backend's view
// is never stale by more than one mutation regardless of whether it
// holds bound properties by reference or by snapshot.
//
// # Usage
//
//	import "github.com/dmitrymomot/logctx/pkg/scope"
//
//	func importBatch(sink scope.Sink, batchID int) {
//	    s := scope.BeginOperation(sink, "Import", scope.P("batch_id", batchID))
//	    defer s.Release()
//
//	    s.Set("rows_seen", 0)
//	    // ... every record the sink emits now carries operation,
//	    // batch_id, rows_seen, and the correlation trace.
//	}
//
// Child scopes extend a parent without sharing mutable state:
//
//	child := scope.BeginChild(sink, parent) // parent released here
//	defer child.Release()
//	child.Set("step", "validate")
//
// # Degraded mode
//
// A nil Sink never panics: the scope stays fully usable as a property
// container and the sink propagation becomes a no-op. Instrumentation
// code therefore never needs to guard against logging not being
// configured yet.
//
// # Concurrency
//
// Independent scopes need no coordination. A single scope may be
// mutated from multiple goroutines; concurrent writes to one key are
// last-write-wins. Release is idempotent and concurrent-safe, and a
// release racing an in-flight rebind always results in the fresh
// binding being torn down rather than leaked.
//
// # Error Handling
//
// The package exposes two sentinel errors, matchable with errors.Is:
//
//   • ErrSerialization – SetSerialized could not convert the value.
//   • ErrReleased      – a fallible operation hit a released scope.
//
// An unavailable sink is not an error; see Degraded mode above.
//
// # Reserved Keys
//
// The Key* constants in keys.go name properties with meaning to
// downstream consumers (correlation trace, source location, operation
// name). They are part of the on-the-wire contract and stay stable.
package scope
