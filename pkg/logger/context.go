package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// With returns a context carrying extra log fields. Every record logged with
// that context through a ContextHandler gets them.
func With(ctx context.Context, fields ...any) context.Context {
	prev := Fields(ctx)
	merged := make([]any, 0, len(prev)+len(fields))
	merged = append(merged, prev...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

// Fields returns the log fields attached to ctx by With.
func Fields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(ctxKey{}).([]any)
	return fields
}

// ContextHandler adds the fields stored by With to each record.
type ContextHandler struct {
	slog.Handler
}

func NewContextHandler(h slog.Handler) *ContextHandler {
	if ch, ok := h.(*ContextHandler); ok {
		return ch
	}
	return &ContextHandler{Handler: h}
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if fields := Fields(ctx); len(fields) > 0 {
		r.Add(fields...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// Contextual returns l with its handler wrapped in a ContextHandler.
func Contextual(l *slog.Logger) *slog.Logger {
	if _, ok := l.Handler().(*ContextHandler); ok {
		return l
	}
	return slog.New(NewContextHandler(l.Handler()))
}
