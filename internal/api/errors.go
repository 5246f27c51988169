package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/1himan/task-management-assignment/internal/api/shared"
	"github.com/1himan/task-management-assignment/internal/domain"
	"github.com/1himan/task-management-assignment/internal/service/auth"
	"github.com/1himan/task-management-assignment/internal/store"
)

// MapErrorToStatusCode translates an error chain into the HTTP status the
// client should see. Sentinels are matched with errors.Is, so service and
// store annotations wrapped around them do not change the outcome.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrUsernameExists):
		return http.StatusConflict

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage picks the client-facing wording for an error.
// Anything not recognized collapses into a generic message so driver
// errors, hostnames, and stack detail never leak into responses.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	// Domain validation errors carry field and message text we wrote
	// ourselves, so they are safe to show.
	if msg, ok := validationErrorMessage(err); ok {
		return msg
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return "Not authenticated"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken):
		return "Invalid refresh token"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid task ID"

	case errors.Is(err, domain.ErrInvalidStatus):
		return "Invalid task status"

	case errors.Is(err, domain.ErrInvalidPriority):
		return "Invalid task priority"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message, logs
// the full (redacted) error, and writes the sanitized response. An empty
// userMessage falls back to the message derived from the error type.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// validationErrorMessage builds the client-facing message for a
// domain.ValidationError anywhere in the error chain. The field name and
// message are authored by us, so exposing them is safe.
func validationErrorMessage(err error) (string, bool) {
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		return "", false
	}
	if validationErr.Field == "" {
		return validationErr.Message, true
	}
	return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message), true
}

// SanitizeValidationError turns a request validation failure into a short
// client-facing message naming the first offending field.
func SanitizeValidationError(err error) string {
	if msg, ok := validationErrorMessage(err); ok {
		return msg
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return fmt.Sprintf("Invalid %s: %s", first.Field(), tagMessage(first.Tag()))
	}

	return "Validation error"
}

// tagMessage rewords a validator tag for clients.
func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
