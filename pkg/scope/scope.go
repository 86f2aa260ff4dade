package scope

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/logctx/pkg/callsite"
)

// Scope is a mutable, thread-safe set of key/value properties bound
// into a Sink for the duration of the scope's lifetime. Every mutation
// made through Set, SetSerialized, SetCallSite, or Clear is propagated
// to the sink by replacing the current binding with a fresh one.
//
// A Scope with a nil sink is fully functional as a property container;
// only the sink propagation degrades to a no-op. This keeps
// instrumentation code free of defensive checks when logging is not
// yet configured.
//
// A single Scope may be mutated from multiple goroutines without
// caller-side locking. Concurrent writes to the same key follow
// last-write-wins with no ordering guarantee between the writers.
type Scope struct {
	sink Sink

	mu    sync.RWMutex
	props map[string]any
	ser   Serializer

	released atomic.Bool

	// hmu serializes handle ownership transfers so that a Release
	// racing an in-flight rebind can neither leak the freshly bound
	// handle nor release one twice.
	hmu    sync.Mutex
	handle Handle
}

// newRoot creates an empty scope, seeds the correlation trace from the
// supplied call site, and binds it into the sink.
func newRoot(sink Sink, file, member string, line int) *Scope {
	s := &Scope{
		sink:  sink,
		props: map[string]any{KeyCorrelationTrace: callsite.Trace(file, member, line)},
		ser:   JSON,
	}
	s.rebind()
	return s
}

// newChild creates a scope holding a full value copy of parent's
// current properties. The copy completes before newChild returns, so a
// caller that releases the parent afterwards can never expose the
// child to a partially torn-down source. A nil parent yields a root
// scope.
func newChild(sink Sink, parent *Scope, file, member string, line int) *Scope {
	if parent == nil {
		return newRoot(sink, file, member, line)
	}

	parent.mu.RLock()
	props := make(map[string]any, len(parent.props)+1)
	for k, v := range parent.props {
		props[k] = v
	}
	ser := parent.ser
	parent.mu.RUnlock()

	// The outermost scope in a chain owns the correlation trace; a
	// fresh one is recorded only when the parent never carried it.
	if _, ok := props[KeyCorrelationTrace]; !ok {
		props[KeyCorrelationTrace] = callsite.Trace(file, member, line)
	}

	s := &Scope{sink: sink, props: props, ser: ser}
	s.rebind()
	return s
}

// Set upserts a property and propagates the change to the sink. Nil
// values are stored as NilValue so the key still surfaces downstream.
// Returns the scope to support chaining. Calling Set on a released
// scope is a no-op.
func (s *Scope) Set(key string, value any) *Scope {
	if s.released.Load() {
		return s
	}
	if value == nil {
		value = NilValue
	}

	s.mu.Lock()
	s.props[key] = value
	s.mu.Unlock()

	s.rebind()
	return s
}

// SetSerialized converts value to text with the scope's Serializer and
// stores the result under key. Serialization failures are returned
// wrapped in ErrSerialization — a silently dropped property would be a
// silent data-loss bug. Returns ErrReleased on a released scope.
func (s *Scope) SetSerialized(key string, value any, style Style) error {
	if s.released.Load() {
		return ErrReleased
	}

	s.mu.RLock()
	ser := s.ser
	s.mu.RUnlock()

	text, err := ser.Serialize(value, style)
	if err != nil {
		return errors.Join(ErrSerialization, err)
	}

	s.Set(key, text)
	return nil
}

// SetCallSite records the conventional source-location properties
// (KeySourceFile, KeyMemberName, KeySourceLine, KeySourceTag) in a
// single rebind. Returns the scope to support chaining.
func (s *Scope) SetCallSite(file, member string, line int) *Scope {
	if s.released.Load() {
		return s
	}

	s.mu.Lock()
	s.props[KeySourceFile] = file
	s.props[KeyMemberName] = member
	s.props[KeySourceLine] = line
	s.props[KeySourceTag] = callsite.Tag(file, member, line)
	s.mu.Unlock()

	s.rebind()
	return s
}

// Clear removes every property and rebinds an empty scope into the
// sink. Returns the scope to support chaining.
func (s *Scope) Clear() *Scope {
	if s.released.Load() {
		return s
	}

	s.mu.Lock()
	s.props = make(map[string]any)
	s.mu.Unlock()

	s.rebind()
	return s
}

// Get returns the property stored under key.
func (s *Scope) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.props[key]
	return v, ok
}

// Put stores a property without propagating it to the sink. Unlike
// Set, the sink's view of the scope is not refreshed until the next
// mutating call that rebinds. Nil values are stored as NilValue.
func (s *Scope) Put(key string, value any) {
	if s.released.Load() {
		return
	}
	if value == nil {
		value = NilValue
	}

	s.mu.Lock()
	s.props[key] = value
	s.mu.Unlock()
}

// Properties returns a copy of the current property set. Mutating the
// returned map never affects the scope.
func (s *Scope) Properties() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	props := make(map[string]any, len(s.props))
	for k, v := range s.props {
		props[k] = v
	}
	return props
}

// Len returns the number of properties currently held.
func (s *Scope) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.props)
}

// WithSerializer replaces the Serializer used by SetSerialized. Nil
// serializers are ignored. Returns the scope to support chaining.
func (s *Scope) WithSerializer(ser Serializer) *Scope {
	if ser == nil {
		return s
	}
	s.mu.Lock()
	s.ser = ser
	s.mu.Unlock()
	return s
}

// Release tears down the sink binding. It is idempotent and safe to
// call from multiple goroutines: the first call wins, every later call
// is a guaranteed no-op. Typically invoked via defer so the binding is
// released on every exit path.
func (s *Scope) Release() {
	if !s.released.CompareAndSwap(false, true) {
		return
	}

	s.hmu.Lock()
	h := s.handle
	s.handle = nil
	s.hmu.Unlock()

	if h != nil {
		h.Release()
	}
}

// rebind replaces the current sink binding with a fresh one seeded
// from the present property set. The sink contract does not promise
// whether a bound map is held by reference or copied, so a full rebind
// after every mutation keeps the sink's view correct under either
// interpretation at a fixed per-mutation cost.
func (s *Scope) rebind() {
	if s.sink == nil {
		return
	}

	s.hmu.Lock()
	defer s.hmu.Unlock()

	if s.released.Load() {
		return
	}

	if s.handle != nil {
		s.handle.Release()
		s.handle = nil
	}

	// The snapshot must be taken inside the critical section: binding
	// order then matches snapshot order, so the last rebind to run
	// always carries the newest property set. A snapshot taken before
	// the lock could be bound after a fresher one, leaving the sink
	// stale until the next mutation.
	fresh := s.sink.Bind(s.Properties())

	// Release may have run between the flag check above and Bind; the
	// fresh handle must then be torn down instead of leaked.
	if s.released.Load() {
		if fresh != nil {
			fresh.Release()
		}
		return
	}
	s.handle = fresh
}
