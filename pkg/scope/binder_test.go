package scope_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/logctx/pkg/scope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBegin_RootScopeCarriesOnlyCorrelationTrace(t *testing.T) {
	t.Parallel()

	sink := newFakeSink()
	s := scope.Begin(sink)
	defer s.Release()

	props := s.Properties()
	require.Len(t, props, 1)

	trace, ok := props[scope.KeyCorrelationTrace].(string)
	require.True(t, ok, "correlation trace must be a string")

	header := strings.SplitN(trace, "\n", 2)[0]
	assert.Regexp(t, `^binder_test::TestBegin_RootScopeCarriesOnlyCorrelationTrace::\d+$`, header)
}

func TestBegin_TraceExcludesHarnessFrames(t *testing.T) {
	t.Parallel()

	s := scope.Begin(newFakeSink())
	defer s.Release()

	trace, ok := s.Get(scope.KeyCorrelationTrace)
	require.True(t, ok)

	assert.NotContains(t, trace, "testing.tRunner")
	assert.NotContains(t, trace, "runtime.goexit")
	assert.NotContains(t, trace, "github.com/stretchr/testify")
}

func TestBegin_TraceKeepsCallerFrame(t *testing.T) {
	t.Parallel()

	s := scope.Begin(newFakeSink())
	defer s.Release()

	trace, ok := s.Get(scope.KeyCorrelationTrace)
	require.True(t, ok)

	// Frame filtering stops at the package boundary: this external
	// test package shares the scope package's path prefix, yet its
	// frames must survive while the binder's own plumbing is elided.
	// The qualified name below only occurs in a frame line, never in
	// the trace header.
	assert.Contains(t, trace, "pkg/scope_test.TestBegin_TraceKeepsCallerFrame")
	assert.NotContains(t, trace, "pkg/scope.Begin")
	assert.NotContains(t, trace, "pkg/scope.newRoot")
}

func TestBegin_BindsIntoSink(t *testing.T) {
	t.Parallel()

	sink := newFakeSink()
	s := scope.Begin(sink)
	defer s.Release()

	require.Equal(t, 1, sink.liveCount())
	props := sink.lastLiveProps()
	require.NotNil(t, props)
	assert.Contains(t, props, scope.KeyCorrelationTrace)
}

func TestBeginChild_InheritanceCompleteness(t *testing.T) {
	t.Parallel()

	sink := newFakeSink()
	parent := scope.Begin(sink)
	parent.Set("A", 1)
	parent.Set("B", 2)

	parentTrace, ok := parent.Get(scope.KeyCorrelationTrace)
	require.True(t, ok)

	child := scope.BeginChild(sink, parent)
	defer child.Release()

	v, ok := child.Get("A")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = child.Get("B")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	// The outer call site wins: the child keeps the parent's trace
	// instead of minting a fresh one.
	v, ok = child.Get(scope.KeyCorrelationTrace)
	require.True(t, ok)
	assert.Equal(t, parentTrace, v)
}

func TestBeginChild_ReleasesParent(t *testing.T) {
	t.Parallel()

	sink := newFakeSink()
	parent := scope.Begin(sink)
	parent.Set("A", 1)

	child := scope.BeginChild(sink, parent)
	defer child.Release()

	// Only the child's binding stays live; the parent's was torn down
	// by the binder, exactly once.
	assert.Equal(t, 1, sink.liveCount())
	assert.False(t, sink.overReleased())

	// A second, caller-side release of the parent stays harmless.
	parent.Release()
	assert.Equal(t, 1, sink.liveCount())
	assert.False(t, sink.overReleased())
}

func TestBeginChild_CopyIndependence(t *testing.T) {
	t.Parallel()

	sink := newFakeSink()
	parent := scope.Begin(sink)
	parent.Set("A", 1)

	child := scope.BeginChild(sink, parent)
	defer child.Release()

	// Mutating the child never reaches the parent's container.
	child.Set("A", 99).Set("childOnly", true)

	v, ok := parent.Get("A")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = parent.Get("childOnly")
	assert.False(t, ok)

	// The released parent rejects mutation, so nothing can bleed into
	// the child either.
	parent.Set("late", "entry")
	_, ok = child.Get("late")
	assert.False(t, ok)
}

func TestBeginChild_NilParentActsAsRoot(t *testing.T) {
	t.Parallel()

	sink := newFakeSink()
	s := scope.BeginChild(sink, nil)
	defer s.Release()

	require.Equal(t, 1, s.Len())
	trace, ok := s.Get(scope.KeyCorrelationTrace)
	require.True(t, ok)

	header := strings.SplitN(trace.(string), "\n", 2)[0]
	assert.Regexp(t, `^binder_test::TestBeginChild_NilParentActsAsRoot::\d+$`, header)
}

func TestBeginOperation(t *testing.T) {
	t.Parallel()

	sink := newFakeSink()
	s := scope.BeginOperation(sink, "Import", scope.P("BatchId", 7))
	defer s.Release()

	v, ok := s.Get(scope.KeyOperation)
	require.True(t, ok)
	assert.Equal(t, "Import", v)

	v, ok = s.Get("BatchId")
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = s.Get(scope.KeyCorrelationTrace)
	assert.True(t, ok)

	// The sink's current view carries the full set.
	props := sink.lastLiveProps()
	require.NotNil(t, props)
	assert.Equal(t, "Import", props[scope.KeyOperation])
	assert.Equal(t, 7, props["BatchId"])
}

func TestBeginOperation_NoExtraProperties(t *testing.T) {
	t.Parallel()

	s := scope.BeginOperation(newFakeSink(), "Cleanup")
	defer s.Release()

	assert.Equal(t, 2, s.Len()) // operation plus correlation trace
}

func TestP(t *testing.T) {
	t.Parallel()

	p := scope.P("k", 42)
	assert.Equal(t, "k", p.Key)
	assert.Equal(t, 42, p.Value)
}
