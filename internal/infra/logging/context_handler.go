package logging

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	// OperationIDKey is the context key request-scoped operation IDs are
	// stored under, so every log line in a request's lifecycle carries it
	// without each call site passing it explicitly.
	OperationIDKey contextKey = "operation_id"
	// CourtIDKey is the context key the tenant guard stores the resolved
	// court under.
	CourtIDKey contextKey = "court_id"
)

// ContextHandler wraps a slog.Handler and copies well-known request-scoped
// values out of the context into every log record it handles.
type ContextHandler struct {
	slog.Handler
}

// NewContextHandler wraps handler so slog.InfoContext and friends pick up
// OperationIDKey/CourtIDKey automatically.
func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{Handler: handler}
}

// Handle adds context-carried attributes to record before delegating.
func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if opID, ok := ctx.Value(OperationIDKey).(string); ok && opID != "" {
		record.AddAttrs(slog.String("operation_id", opID))
	}
	if courtID, ok := ctx.Value(CourtIDKey).(string); ok && courtID != "" {
		record.AddAttrs(slog.String("court_id", courtID))
	}
	return h.Handler.Handle(ctx, record)
}

// WithAttrs preserves the ContextHandler wrapper across slog.Logger.With calls.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

// WithGroup preserves the ContextHandler wrapper across slog.Logger.WithGroup calls.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}
