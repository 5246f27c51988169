package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/1himan/task-management-assignment/internal/api/shared"
	"github.com/1himan/task-management-assignment/internal/domain"
)

// getUserIDFromContext extracts the authenticated user's ID from the request
// context. The user ID is placed in the context by the authentication
// middleware as the hex form of the store's object ID.
//
// Returns:
//   - (id, true): The user's ID if successfully extracted
//   - ("", false): An empty ID and false if the user ID is missing or empty
func getUserIDFromContext(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// getPathID extracts an entity ID from the URL path parameters. The ID is
// the hex form of the store's object ID; the store reports malformed values,
// so only presence is checked here.
//
// Returns:
//   - (id, nil): The raw path parameter if present
//   - ("", error): An empty ID and an error if the parameter is missing
func getPathID(r *http.Request, paramName string) (string, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}
	return pathParam, nil
}
