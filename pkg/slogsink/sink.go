package slogsink

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/logctx/pkg/scope"

	"github.com/google/uuid"
)

// Sink implements scope.Sink on top of log/slog. Each Bind snapshots
// the supplied properties into a live binding; a Handler built over
// this sink injects every live binding's properties into each record
// it handles. Releasing the returned handle deregisters the binding.
//
// Snapshot semantics on Bind pair with the scope package's
// rebind-on-mutation design: the sink never observes a half-mutated
// property set.
type Sink struct {
	mu       sync.RWMutex
	bindings []*binding
}

// NewSink creates an empty sink ready to accept bindings.
func NewSink() *Sink {
	return &Sink{}
}

// Bind snapshots props into a new live binding and returns its handle.
// Bindings stack: when several are live, properties of later bindings
// shadow earlier ones on key collisions.
func (s *Sink) Bind(props map[string]any) scope.Handle {
	cp := make(map[string]any, len(props))
	for k, v := range props {
		cp[k] = v
	}

	b := &binding{id: uuid.New(), props: cp, sink: s}
	s.mu.Lock()
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()
	return b
}

// Live returns the number of currently bound scopes.
func (s *Sink) Live() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bindings)
}

// attrs flattens every live binding's properties into slog attributes,
// letting later bindings win key collisions. Returns nil when nothing
// is bound, keeping the logging hot path allocation-free in that case.
func (s *Sink) attrs() []slog.Attr {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.bindings) == 0 {
		return nil
	}

	merged := make(map[string]any)
	order := make([]string, 0, len(s.bindings)*2)
	for _, b := range s.bindings {
		for k, v := range b.props {
			if _, seen := merged[k]; !seen {
				order = append(order, k)
			}
			merged[k] = v
		}
	}

	attrs := make([]slog.Attr, 0, len(order))
	for _, k := range order {
		attrs = append(attrs, slog.Any(k, merged[k]))
	}
	return attrs
}

func (s *Sink) remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bindings {
		if b.id == id {
			s.bindings = append(s.bindings[:i], s.bindings[i+1:]...)
			return
		}
	}
}

// binding is one live bound scope inside a Sink.
type binding struct {
	id       uuid.UUID
	props    map[string]any
	sink     *Sink
	released atomic.Bool
}

// Release deregisters the binding. Safe to call more than once; only
// the first call has an effect.
func (b *binding) Release() {
	if !b.released.CompareAndSwap(false, true) {
		return
	}
	b.sink.remove(b.id)
}
