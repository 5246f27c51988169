package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/1himan/task-management-assignment/internal/config"
	"github.com/1himan/task-management-assignment/internal/platform/logger"
)

// minSecretLength is the shortest HMAC key the service will accept.
// Anything shorter makes brute-forcing the signature practical.
const minSecretLength = 32

// clockSkew is the leeway applied to time-based claims so that small
// drift between the issuing and validating host does not reject
// otherwise valid tokens.
const clockSkew = 2 * time.Minute

// tokenKind describes one of the two token families the service issues.
// Both sign with the same key; the kind determines the "type" claim and
// which sentinel errors a validation failure maps to, so handlers can
// distinguish an expired access token from an expired refresh token.
type tokenKind struct {
	name       string
	expiredErr error
	notYetErr  error
	invalidErr error
}

var (
	accessKind  = tokenKind{"access", ErrExpiredToken, ErrTokenNotYetValid, ErrInvalidToken}
	refreshKind = tokenKind{"refresh", ErrExpiredRefreshToken, ErrInvalidRefreshToken, ErrInvalidRefreshToken}
)

// tokenClaims is the wire shape of the claims block in issued tokens.
type tokenClaims struct {
	UserID    string `json:"uid"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// hmacJWTService implements JWTService with HMAC-SHA256 signing.
// timeFunc is a field so tests can issue and validate tokens at
// controlled instants.
type hmacJWTService struct {
	signingKey      []byte
	accessLifetime  time.Duration
	refreshLifetime time.Duration
	timeFunc        func() time.Time
	clockSkew       time.Duration
}

var _ JWTService = (*hmacJWTService)(nil)

// NewJWTService builds the production JWT service from the auth config.
// It rejects secrets shorter than minSecretLength.
func NewJWTService(cfg config.AuthConfig) (JWTService, error) {
	if len(cfg.JWTSecret) < minSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", minSecretLength)
	}

	return &hmacJWTService{
		signingKey:      []byte(cfg.JWTSecret),
		accessLifetime:  time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		refreshLifetime: time.Duration(cfg.RefreshTokenLifetimeMinutes) * time.Minute,
		timeFunc:        time.Now,
		clockSkew:       clockSkew,
	}, nil
}

// AccessTokenLifetime reports how long issued access tokens stay valid.
// The auth handler uses it to set the cookie Max-Age and the expires_at
// field in responses.
func (s *hmacJWTService) AccessTokenLifetime() time.Duration {
	return s.accessLifetime
}

func (s *hmacJWTService) lifetime(kind tokenKind) time.Duration {
	if kind.name == refreshKind.name {
		return s.refreshLifetime
	}
	return s.accessLifetime
}

// GenerateToken issues a signed access token for the given user ID.
func (s *hmacJWTService) GenerateToken(ctx context.Context, userID string) (string, error) {
	return s.sign(ctx, userID, accessKind)
}

// GenerateRefreshToken issues a signed refresh token for the given user
// ID. Refresh tokens outlive access tokens and are only accepted by the
// refresh endpoint.
func (s *hmacJWTService) GenerateRefreshToken(ctx context.Context, userID string) (string, error) {
	return s.sign(ctx, userID, refreshKind)
}

// ValidateToken checks an access token and returns its claims.
// A structurally valid refresh token presented here fails with
// ErrWrongTokenType.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	return s.parse(ctx, tokenString, accessKind)
}

// ValidateRefreshToken checks a refresh token and returns its claims.
func (s *hmacJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error) {
	return s.parse(ctx, tokenString, refreshKind)
}

func (s *hmacJWTService) sign(ctx context.Context, userID string, kind tokenKind) (string, error) {
	now := s.timeFunc()

	claims := tokenClaims{
		UserID:    userID,
		TokenType: kind.name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime(kind))),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		logger.FromContext(ctx).Error("failed to sign token",
			"error", err,
			"user_id", userID,
			"token_type", kind.name)
		return "", fmt.Errorf("failed to sign %s token: %w", kind.name, err)
	}

	return signed, nil
}

func (s *hmacJWTService) parse(ctx context.Context, tokenString string, kind tokenKind) (*Claims, error) {
	log := logger.FromContext(ctx)

	// Pin "now" once so every time-based claim is judged against the
	// same instant.
	now := s.timeFunc()
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		opts...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: expired",
				"error", err, "token_type", kind.name)
			return nil, kind.expiredErr
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			log.Debug("token validation failed: not yet valid",
				"error", err, "token_type", kind.name)
			return nil, kind.notYetErr
		default:
			log.Debug("token validation failed",
				"error", err,
				"token_type", kind.name,
				"error_type", fmt.Sprintf("%T", err))
			return nil, kind.invalidErr
		}
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		log.Debug("token validation failed: invalid claims", "token_type", kind.name)
		return nil, kind.invalidErr
	}

	if claims.TokenType != kind.name {
		log.Debug("token validation failed: wrong token type",
			"expected", kind.name,
			"actual", claims.TokenType)
		return nil, ErrWrongTokenType
	}

	log.Debug("token validated",
		"user_id", claims.UserID,
		"token_type", kind.name,
		"token_id", claims.ID)

	return &Claims{
		UserID:    claims.UserID,
		TokenType: claims.TokenType,
		Subject:   claims.Subject,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
		ID:        claims.ID,
	}, nil
}
