package logger

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type for context keys defined in this package.
type contextKey string

// loggerKey is the context key under which the request-scoped logger is stored.
const loggerKey contextKey = "logger"

// WithLogger returns a copy of ctx that carries the given logger. Handlers
// and middleware use this to propagate a request-scoped logger (for example
// one annotated with a trace ID) down to services and stores.
//
// Panics if log is nil; storing a nil logger would turn every downstream
// FromContext call into a nil dereference far from the cause.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	if log == nil {
		panic("logger.WithLogger: nil logger")
	}
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves the logger stored in ctx. If ctx is nil or carries
// no logger, the process-wide default logger is returned so callers can log
// unconditionally.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger stored in ctx, falling back to
// the provided default when ctx is nil or carries no logger. Components that
// hold their own logger use this so request-scoped attributes win when
// present.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if ctx == nil {
		return def
	}
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return log
	}
	return def
}
