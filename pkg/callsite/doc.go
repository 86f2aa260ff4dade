// Package callsite turns a captured call-site identity into the compact
// tags and filtered stack traces used for log correlation.
//
// A call site is the triple (file, member, line) describing where a
// logging scope was opened. The package offers two textual renderings:
//
//   • Tag – a single-token form "{file}.{member}.{line}" suitable for a
//     log property value or a metric label.
//   • Trace – a multi-line form "{file}::{member}::{line}" followed by
//     the current call stack, with frames belonging to the Go runtime,
//     the testing harness, assertion frameworks, and this module's own
//     plumbing filtered out.
//
// # Usage
//
//	import "github.com/dmitrymomot/logctx/pkg/callsite"
//
//	file, member, line := callsite.Capture(0)
//	log.Info("payment failed",
//	    slog.String("source", callsite.Tag(file, member, line)),
//	)
//
// Capture wraps runtime.Caller so that higher layers record call sites
// automatically; Tag and Trace are pure formatting helpers and accept
// explicitly supplied values just as well.
//
// Trace filtering is a best-effort debugging aid: frame matching is a
// simple substring test and an occasional unfiltered frame is expected
// and harmless.
//
// The package is stateless and safe for concurrent use.
package callsite
