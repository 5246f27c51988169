package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/1himan/task-management-assignment/internal/api/shared"
	"github.com/1himan/task-management-assignment/internal/platform/logger"
)

// traceIDHeader is the response header carrying the request's trace ID,
// matching the trace_id field in error bodies and log lines.
const traceIDHeader = "X-Trace-ID"

// TraceMiddleware stamps each request with a fresh trace ID and stores a
// trace-annotated logger in the context. Everything downstream that logs
// through the context carries the same trace_id, and clients get the ID
// back in the X-Trace-ID header. Once the handler returns, the request is
// logged with its status and duration. Must run before any middleware that
// logs or writes error responses.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		w.Header().Set(traceIDHeader, traceID)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		log.Info("request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)))
	})
}
