package logging

import (
	"context"
	"log/slog"
)

// Field names shared across the codebase so log lines stay greppable.
const (
	FieldComponent = "component"
	FieldSweepID   = "sweep_id"
	FieldRoot      = "root"
	FieldPass      = "pass"
	FieldCategory  = "category"
)

type contextKey struct{}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext retrieves the logger from the context, falling back to a no-op
// logger when none is present.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return NewNop()
}

// WithSweepID returns a child logger annotated with the run identifier.
func WithSweepID(logger *slog.Logger, id string) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	return logger.With(String(FieldSweepID, id))
}
