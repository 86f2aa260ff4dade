package slogsink

import (
	"context"
	"log/slog"
)

// Handler wraps a slog.Handler and injects the properties of every
// scope currently bound into the Sink. Injection happens per log call,
// so records always reflect the bindings live at emission time rather
// than a cached view.
type Handler struct {
	next slog.Handler
	sink *Sink
}

// NewHandler decorates next with property injection from sink. A nil
// sink yields a pass-through handler so callers need no guard.
func NewHandler(next slog.Handler, sink *Sink) slog.Handler {
	return &Handler{next: next, sink: sink}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle attaches the live bound properties and delegates to the
// underlying handler.
func (h *Handler) Handle(ctx context.Context, rec slog.Record) error {
	if h.sink != nil {
		if attrs := h.sink.attrs(); len(attrs) > 0 {
			rec.AddAttrs(attrs...)
		}
	}
	return h.next.Handle(ctx, rec)
}

// WithAttrs returns a decorated handler carrying additional static
// attributes while preserving the sink injection.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{next: h.next.WithAttrs(attrs), sink: h.sink}
}

// WithGroup returns a decorated handler with attribute grouping while
// preserving the sink injection.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{next: h.next.WithGroup(name), sink: h.sink}
}
