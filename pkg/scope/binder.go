package scope

import "github.com/dmitrymomot/logctx/pkg/callsite"

// Property is a single key/value pair supplied to BeginOperation.
type Property struct {
	Key   string
	Value any
}

// P is a shorthand constructor for Property.
//
// Example:
//
//	s := scope.BeginOperation(sink, "Import", scope.P("batch_id", 7))
func P(key string, value any) Property {
	return Property{Key: key, Value: value}
}

// Begin opens a root scope bound to sink. The call site is captured
// automatically from the calling expression and recorded as the
// correlation trace. A nil sink yields a degraded scope that accepts
// mutations but propagates nothing.
//
// The returned scope must be released exactly once, typically:
//
//	s := scope.Begin(sink)
//	defer s.Release()
func Begin(sink Sink) *Scope {
	file, member, line := callsite.Capture(1)
	return newRoot(sink, file, member, line)
}

// BeginChild opens a scope inheriting a full value copy of parent's
// properties, including the parent's correlation trace. The copy
// completes before the parent is touched; BeginChild then releases the
// parent itself, exactly once. Callers must not release the parent
// separately.
//
// A nil parent yields a root scope.
func BeginChild(sink Sink, parent *Scope) *Scope {
	file, member, line := callsite.Capture(1)
	child := newChild(sink, parent, file, member, line)
	if parent != nil {
		parent.Release()
	}
	return child
}

// BeginOperation opens a root scope carrying the conventional
// KeyOperation property plus any supplied pairs. Intended for marking
// a logical unit of work:
//
//	s := scope.BeginOperation(sink, "Import",
//	    scope.P("batch_id", batchID),
//	    scope.P("tenant_id", tenantID),
//	)
//	defer s.Release()
func BeginOperation(sink Sink, operation string, props ...Property) *Scope {
	file, member, line := callsite.Capture(1)
	s := newRoot(sink, file, member, line)
	s.Set(KeyOperation, operation)
	for _, p := range props {
		s.Set(p.Key, p.Value)
	}
	return s
}
