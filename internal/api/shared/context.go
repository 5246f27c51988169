package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the type for request-scoped values the API layer stores.
// A named type keeps these keys from colliding with other packages'.
type ContextKey string

const (
	// UserIDContextKey carries the authenticated user's hex document ID,
	// set by the auth middleware after token validation.
	UserIDContextKey ContextKey = "userID"

	// TraceIDKey carries the per-request trace ID.
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID stamps the context with a fresh UUID trace ID. Error
// responses and log lines produced while serving the request all quote
// this ID.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID reads the trace ID from the context, returning "" when the
// request was never stamped.
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}
