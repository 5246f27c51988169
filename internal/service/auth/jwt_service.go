// Package auth issues and validates the JWT token pairs used to
// authenticate API requests, and owns the bcrypt password policy.
package auth

import (
	"context"
	"time"
)

// JWTService issues and validates the access/refresh token pair.
// Access tokens authenticate individual requests; refresh tokens are
// accepted only by the refresh endpoint to mint a fresh pair.
type JWTService interface {
	// GenerateToken issues a signed access token for userID.
	GenerateToken(ctx context.Context, userID string) (string, error)

	// ValidateToken checks an access token and returns its claims.
	// Fails with ErrWrongTokenType when handed a refresh token, and
	// with the token sentinels in errors.go for everything else.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken issues a signed refresh token for userID.
	GenerateRefreshToken(ctx context.Context, userID string) (string, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)

	// AccessTokenLifetime reports the configured access token lifetime
	// so cookie expiry and the expires_at response field stay in step
	// with the token's own exp claim.
	AccessTokenLifetime() time.Duration
}

// Claims is the validated content of a token, decoupled from the JWT
// library's own claim types so callers never import it.
type Claims struct {
	// UserID is the hex document ID the token was issued for.
	UserID string `json:"uid,omitempty"`

	// TokenType is "access" or "refresh".
	TokenType string `json:"type,omitempty"`

	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
