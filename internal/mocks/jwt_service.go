package mocks

import (
	"context"
	"time"

	"github.com/1himan/task-management-assignment/internal/service/auth"
)

// MockJWTService implements auth.JWTService. The *Fn fields override
// individual methods; when unset, the methods return the canned Token,
// RefreshToken, Claims, and error values.
type MockJWTService struct {
	GenerateTokenFn        func(ctx context.Context, userID string) (string, error)
	ValidateTokenFn        func(ctx context.Context, tokenString string) (*auth.Claims, error)
	GenerateRefreshTokenFn func(ctx context.Context, userID string) (string, error)
	ValidateRefreshTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Canned results for the no-override path.
	Token        string
	RefreshToken string
	Claims       *auth.Claims
	Err          error
	ValidateErr  error

	// TokenLifetime is what AccessTokenLifetime reports; zero means an hour.
	TokenLifetime time.Duration
}

var _ auth.JWTService = (*MockJWTService)(nil)

func (m *MockJWTService) GenerateToken(ctx context.Context, userID string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.Err
}

func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, userID string) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, userID)
	}
	return m.RefreshToken, m.Err
}

func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

func (m *MockJWTService) AccessTokenLifetime() time.Duration {
	if m.TokenLifetime != 0 {
		return m.TokenLifetime
	}
	return time.Hour
}
