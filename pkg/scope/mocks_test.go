package scope_test

import (
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/logctx/pkg/scope"
)

// fakeSink records every binding it hands out so tests can assert on
// handle lifecycles: how many bindings were created, which are still
// live, and whether any handle was ever released more than once.
type fakeSink struct {
	mu      sync.Mutex
	handles []*fakeHandle
}

func newFakeSink() *fakeSink {
	return &fakeSink{}
}

func (f *fakeSink) Bind(props map[string]any) scope.Handle {
	// Snapshot semantics: keep a private copy so later scope mutations
	// cannot retroactively change what this binding observed.
	cp := make(map[string]any, len(props))
	for k, v := range props {
		cp[k] = v
	}

	h := &fakeHandle{props: cp}
	f.mu.Lock()
	f.handles = append(f.handles, h)
	f.mu.Unlock()
	return h
}

func (f *fakeSink) bindCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handles)
}

func (f *fakeSink) liveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	live := 0
	for _, h := range f.handles {
		if h.releases.Load() == 0 {
			live++
		}
	}
	return live
}

// overReleased reports whether the core ever released a single handle
// more than once.
func (f *fakeSink) overReleased() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, h := range f.handles {
		if h.releases.Load() > 1 {
			return true
		}
	}
	return false
}

// lastLiveProps returns the property snapshot of the most recently
// created binding that is still live, or nil when none is.
func (f *fakeSink) lastLiveProps() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := len(f.handles) - 1; i >= 0; i-- {
		if f.handles[i].releases.Load() == 0 {
			return f.handles[i].props
		}
	}
	return nil
}

type fakeHandle struct {
	props    map[string]any
	releases atomic.Int32
}

func (h *fakeHandle) Release() {
	h.releases.Add(1)
}

// failingSerializer always fails, for exercising error propagation.
type failingSerializer struct {
	err error
}

func (s failingSerializer) Serialize(_ any, _ scope.Style) (string, error) {
	return "", s.err
}

// prefixSerializer renders every value as a fixed prefix plus the
// style, proving the scope consults the configured serializer.
type prefixSerializer struct{}

func (prefixSerializer) Serialize(_ any, style scope.Style) (string, error) {
	if style == scope.StylePretty {
		return "custom:pretty", nil
	}
	return "custom:compact", nil
}
