package mocks

import (
	"context"
	"fmt"

	"github.com/1himan/task-management-assignment/internal/domain"
	"github.com/1himan/task-management-assignment/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id string) (*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)

	// Data for default implementation, keyed by username
	Users              map[string]*domain.User
	LastUserID         string
	CreateError        error
	GetByUsernameError error

	nextID int
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := user.Validate(); err != nil {
		return err
	}

	if _, exists := m.Users[user.Username]; exists {
		return fmt.Errorf("%w: %q", store.ErrUsernameExists, user.Username)
	}

	// Mirror the real store: generate an ID, pretend to hash, drop the
	// plaintext.
	m.nextID++
	user.ID = fakeObjectID(m.nextID)
	user.HashedPassword = "hashed:" + user.Password
	user.Password = ""

	m.Users[user.Username] = user
	m.LastUserID = user.ID
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	// Default implementation searches through the Users map
	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, store.ErrUserNotFound
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	if m.GetByUsernameError != nil {
		return nil, m.GetByUsernameError
	}

	user, exists := m.Users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	return user, nil
}

// fakeObjectID renders a counter as a 24 character hex string shaped
// like a real document ID.
func fakeObjectID(n int) string {
	return fmt.Sprintf("%024x", n)
}
