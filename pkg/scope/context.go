package scope

import "context"

type contextKey struct{}

// WithContext returns a context carrying s as the active scope for the
// request or task it travels with.
func WithContext(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the scope stored by WithContext, or nil when the
// context carries none.
func FromContext(ctx context.Context) *Scope {
	if ctx == nil {
		return nil
	}
	s, ok := ctx.Value(contextKey{}).(*Scope)
	if !ok {
		return nil
	}
	return s
}
