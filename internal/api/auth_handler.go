package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/1himan/task-management-assignment/internal/api/shared"
	"github.com/1himan/task-management-assignment/internal/domain"
	"github.com/1himan/task-management-assignment/internal/platform/logger"
	"github.com/1himan/task-management-assignment/internal/service/auth"
	"github.com/1himan/task-management-assignment/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
	}
}

// tokenPair bundles a freshly generated access/refresh token pair with the
// access token's expiry for response assembly.
type tokenPair struct {
	accessToken  string
	refreshToken string
	expiresAt    string
}

// generateTokenPair creates an access and refresh token for the user and
// formats the access token expiry as an ISO 8601 timestamp.
func (h *AuthHandler) generateTokenPair(r *http.Request, userID string) (tokenPair, error) {
	accessToken, err := h.jwtService.GenerateToken(r.Context(), userID)
	if err != nil {
		return tokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), userID)
	if err != nil {
		return tokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(h.jwtService.AccessTokenLifetime())
	return tokenPair{
		accessToken:  accessToken,
		refreshToken: refreshToken,
		expiresAt:    expiresAt.Format(time.RFC3339),
	}, nil
}

// Register handles the /register endpoint. On success it responds 201 with
// a token pair and sets the access token cookie so a fresh registration is
// immediately authenticated.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RegisterRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Create user
	user, err := domain.NewUser(req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %v", domain.ErrValidation, err), "Invalid user data")
		return
	}

	// Store user; the store hashes the password before persisting
	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			HandleAPIError(w, r, err, "Username already exists")
			return
		}
		log.Error("failed to create user",
			"error", err,
			"username", req.Username)
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	tokens, err := h.generateTokenPair(r, user.ID)
	if err != nil {
		log.Error("failed to generate token pair",
			"error", err,
			"user_id", user.ID)
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	setAuthCookie(w, tokens.accessToken, h.jwtService.AccessTokenLifetime())
	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		Message:      "User registered successfully",
		AccessToken:  tokens.accessToken,
		RefreshToken: tokens.refreshToken,
		ExpiresAt:    tokens.expiresAt,
	})
}

// Login handles the /login endpoint. Unknown usernames and wrong passwords
// produce the same 401 so the response does not reveal which usernames
// exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req LoginRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Get user by username
	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error("failed to get user by username",
			"error", err,
			"username", req.Username)
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	// Verify password using the injected verifier
	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tokens, err := h.generateTokenPair(r, user.ID)
	if err != nil {
		log.Error("failed to generate token pair",
			"error", err,
			"user_id", user.ID)
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	setAuthCookie(w, tokens.accessToken, h.jwtService.AccessTokenLifetime())
	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		Message:      "User logged in successfully",
		AccessToken:  tokens.accessToken,
		RefreshToken: tokens.refreshToken,
		ExpiresAt:    tokens.expiresAt,
	})
}

// Logout handles the /logout endpoint by expiring the access token cookie.
// Tokens held by API clients simply age out.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearAuthCookie(w)
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Logged out successfully",
	})
}

// RefreshToken handles the /refresh endpoint. A valid refresh token yields
// a brand new token pair; the old refresh token is superseded.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RefreshTokenRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Validate the refresh token and extract its claims
	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tokens, err := h.generateTokenPair(r, claims.UserID)
	if err != nil {
		log.Error("failed to generate token pair",
			"error", err,
			"user_id", claims.UserID)
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	setAuthCookie(w, tokens.accessToken, h.jwtService.AccessTokenLifetime())
	shared.RespondWithJSON(w, r, http.StatusOK, RefreshTokenResponse{
		AccessToken:  tokens.accessToken,
		RefreshToken: tokens.refreshToken,
		ExpiresAt:    tokens.expiresAt,
	})
}

// GetUser handles the /user endpoint, greeting the authenticated user by
// name.
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Valid token for a user that no longer exists
			HandleAPIError(w, r, err, "")
			return
		}
		log.Error("failed to get user by ID",
			"error", err,
			"user_id", userID)
		shared.RespondWithErrorAndLog(
			w, r, http.StatusInternalServerError, "Failed to load user", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Hello %s, welcome back!", user.Username),
	})
}
