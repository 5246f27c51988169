package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1himan/task-management-assignment/internal/api/shared"
	"github.com/1himan/task-management-assignment/internal/mocks"
	"github.com/1himan/task-management-assignment/internal/service/auth"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	const userID = "64f1c0d2a5b9e8f7c6d5e4f3"

	tests := []struct {
		name            string
		authHeader      string
		cookieToken     string
		validateErr     error
		claims          *auth.Claims
		expectedStatus  int
		expectedUserID  string
		expectedMessage string
	}{
		{
			name:           "valid bearer token",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: userID},
			expectedStatus: http.StatusOK,
			expectedUserID: userID,
		},
		{
			name:           "valid cookie token",
			cookieToken:    "valid-cookie-token",
			claims:         &auth.Claims{UserID: userID},
			expectedStatus: http.StatusOK,
			expectedUserID: userID,
		},
		{
			name:            "missing credentials",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Not authenticated",
		},
		{
			name:            "invalid auth format",
			authHeader:      "InvalidFormat",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Not authenticated",
		},
		{
			name:            "header preferred over cookie",
			authHeader:      "NotBearer something",
			cookieToken:     "valid-cookie-token",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Not authenticated",
		},
		{
			name:            "expired token",
			authHeader:      "Bearer expired-token",
			validateErr:     auth.ErrExpiredToken,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Token expired",
		},
		{
			name:            "invalid token",
			authHeader:      "Bearer invalid-token",
			validateErr:     auth.ErrInvalidToken,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token",
		},
		{
			name:            "refresh token used as access token",
			authHeader:      "Bearer refresh-token",
			validateErr:     auth.ErrWrongTokenType,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token",
		},
		{
			name:            "expired cookie token",
			cookieToken:     "expired-cookie-token",
			validateErr:     auth.ErrExpiredToken,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Token expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create mock JWT service
			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}

			// Create middleware
			middleware := NewAuthMiddleware(jwtService)

			// Create test handler
			var capturedUserID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, ok := GetUserID(r)
				if ok {
					capturedUserID = userID
				}
				w.WriteHeader(http.StatusOK)
			})

			// Create request
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}
			if tt.cookieToken != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookieToken})
			}

			// Create response recorder
			recorder := httptest.NewRecorder()

			// Run middleware
			middleware.Authenticate(nextHandler).ServeHTTP(recorder, req)

			// Check status code
			assert.Equal(t, tt.expectedStatus, recorder.Code)

			// Check user ID in context
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedUserID, capturedUserID)
			}

			// Check the client-facing error detail
			if tt.expectedMessage != "" {
				var errResp shared.ErrorResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedMessage, errResp.Error)
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	const testUserID = "64f1c0d2a5b9e8f7c6d5e4f3"

	// Test case 1: Context with user ID
	t.Run("context with user ID", func(t *testing.T) {
		// Create request with user ID in context
		req, err := http.NewRequest("GET", "/", nil)
		require.NoError(t, err)
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, testUserID)
		req = req.WithContext(ctx)

		// Get user ID from context
		userID, ok := GetUserID(req)

		// Check results
		assert.True(t, ok)
		assert.Equal(t, testUserID, userID)
	})

	// Test case 2: Context without user ID
	t.Run("context without user ID", func(t *testing.T) {
		// Create request without user ID in context
		req, err := http.NewRequest("GET", "/", nil)
		require.NoError(t, err)

		// Get user ID from context
		userID, ok := GetUserID(req)

		// Check results
		assert.False(t, ok)
		assert.Empty(t, userID)
	})
}
