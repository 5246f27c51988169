// Package api contains the HTTP handlers for authentication and task
// management, plus the translation from service errors to status codes.
// Handlers decode and validate requests, call a service or store, and
// write JSON through the shared response helpers; they hold no business
// logic of their own.
package api
