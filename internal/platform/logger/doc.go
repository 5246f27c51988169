// Package logger provides structured logging for the application using the
// standard library's log/slog package with JSON output.
//
// Setup configures the process-wide default logger from the server
// configuration: it parses the configured level, writes JSON records to
// stdout, and optionally mirrors them into a size-rotated file.
//
// The package also carries request-scoped loggers through contexts. The HTTP
// trace middleware attaches a logger annotated with the request's trace ID
// via WithLogger; services and stores recover it with FromContext or
// FromContextOrDefault so every record emitted while serving a request can
// be correlated.
package logger
