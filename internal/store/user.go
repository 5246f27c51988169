package store

import (
	"context"

	"github.com/1himan/task-management-assignment/internal/domain"
)

// UserStore persists registered users. Implementations hash the plaintext
// password before writing; domain.User leaves the store carrying only the
// hash.
type UserStore interface {
	// Create validates and saves a new user, filling in the generated
	// ID. Fails with ErrUsernameExists when the username is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID looks up a user by the hex form of their document ID.
	// A malformed or unknown ID fails with ErrUserNotFound.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByUsername looks up a user by username, failing with
	// ErrUserNotFound when no such user exists.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
