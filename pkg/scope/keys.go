package scope

// Reserved property keys. These names are part of the contract with
// downstream log consumers (dashboards, alert queries) and must stay
// stable across releases.
const (
	// KeyCorrelationTrace holds the formatted call-site trace that
	// correlates log events back to the code that opened the scope.
	KeyCorrelationTrace = "correlation_trace"

	// KeySourceFile holds the source file name without extension.
	KeySourceFile = "source_file"

	// KeyMemberName holds the unqualified function or method name.
	KeyMemberName = "member_name"

	// KeySourceLine holds the line number of the call site.
	KeySourceLine = "source_line"

	// KeySourceTag holds the compact "{file}.{member}.{line}" tag.
	KeySourceTag = "source_tag"

	// KeyOperation names the logical operation an operation scope was
	// opened for.
	KeyOperation = "operation"
)

// NilValue is stored in place of a nil property value so that a
// requested key always surfaces downstream instead of silently holding
// an absent marker.
const NilValue = "<nil>"
