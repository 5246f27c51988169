package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/1himan/task-management-assignment/internal/platform/logger"
	"github.com/1himan/task-management-assignment/internal/redact"
)

// ErrorResponse is the JSON body of every error the API returns.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"-"` // logged, never serialized
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON marshals data and writes it with the given status.
// Marshaling happens before the header goes out, so an unencodable
// payload degrades to a well-formed 500 instead of a truncated 200.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			"error", err,
			"path", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":"Failed to encode response"}`)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		logger.FromContext(r.Context()).Debug("failed to write response",
			"error", err,
			"path", r.URL.Path)
	}
}

// RespondWithError writes a sanitized error body, quoting the request's
// trace ID when one is set.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logger.FromContext(r.Context()).Debug("sending error response",
		"status_code", status,
		"message", message,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		Code:    status,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithErrorAndLog writes a sanitized error body and logs the real
// error. Server errors (5xx) log at ERROR; client errors log at DEBUG
// since they are usually caller mistakes. The raw error is redacted
// before logging and never reaches the client.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	logAttrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		Code:    status,
		TraceID: GetTraceID(r.Context()),
	})
}
