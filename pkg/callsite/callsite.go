package callsite

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// framePrefix marks every retained stack-frame line in a trace.
	framePrefix = "--"

	// maxFrames caps how many stack frames a trace inspects.
	maxFrames = 64
)

// noisyFrames lists substrings identifying stack frames that carry no
// diagnostic value in a correlation trace: the Go runtime, the testing
// harness, assertion/BDD frameworks, and this module's own scope and
// sink plumbing. The module's own markers end at a package boundary
// ("." for function names, "/" for file paths) so sibling packages and
// external test packages sharing the prefix are not swallowed.
// Matching is substring-based; an occasional unfiltered frame is
// harmless.
var noisyFrames = []string{
	"runtime.",
	"testing.",
	"github.com/stretchr/testify/",
	"github.com/onsi/ginkgo/",
	"github.com/dmitrymomot/logctx/pkg/scope.",
	"github.com/dmitrymomot/logctx/pkg/scope/",
	"github.com/dmitrymomot/logctx/pkg/slogsink.",
	"github.com/dmitrymomot/logctx/pkg/slogsink/",
}

// Tag formats a call site as a compact single-token identifier.
//
// Example:
//
//	callsite.Tag("billing", "ChargeCard", 42) // "billing.ChargeCard.42"
func Tag(file, member string, line int) string {
	return fmt.Sprintf("%s.%s.%d", file, member, line)
}

// Trace formats a call site as a correlation trace: a header line
// followed by one "--" prefixed line per retained frame of the current
// call stack. Frames matching noisyFrames are elided, as is the Trace
// call itself.
//
// The header has the form "{file}::{member}::{line}".
func Trace(file, member string, line int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s::%s::%d", file, member, line)

	var pcs [maxFrames]uintptr
	// Skip runtime.Callers and Trace itself; the rest is filtered below.
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !noisy(frame) {
			fmt.Fprintf(&b, "\n%s %s %s:%d",
				framePrefix, frame.Function, filepath.Base(frame.File), frame.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}

// Capture resolves the call site skip+1 frames above the caller using
// the runtime's caller facility. It returns the source file name
// without the ".go" extension, the unqualified function name, and the
// line number. Zero values are returned when the stack cannot be
// resolved, which keeps callers free of defensive checks.
func Capture(skip int) (file, member string, line int) {
	pc, path, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", "", 0
	}

	file = strings.TrimSuffix(filepath.Base(path), ".go")

	member = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		member = fn.Name()
		// Trim the package path: "pkg/path.(*T).Method" -> "Method".
		if idx := strings.LastIndex(member, "."); idx != -1 {
			member = member[idx+1:]
		}
	}

	return file, member, line
}

func noisy(frame runtime.Frame) bool {
	for _, marker := range noisyFrames {
		if strings.Contains(frame.Function, marker) || strings.Contains(frame.File, marker) {
			return true
		}
	}
	return false
}
