package scope

import "errors"

var (
	// ErrSerialization is returned when a property value cannot be
	// converted to text by the configured Serializer.
	ErrSerialization = errors.New("scope: cannot serialize property value")

	// ErrReleased is returned when a fallible operation is attempted on
	// an already released scope.
	ErrReleased = errors.New("scope: scope already released")
)
