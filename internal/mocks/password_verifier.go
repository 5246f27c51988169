package mocks

import (
	"errors"

	"github.com/1himan/task-management-assignment/internal/service/auth"
)

// ErrPasswordMismatch is what Compare returns when ShouldSucceed is false.
var ErrPasswordMismatch = errors.New("password mismatch")

// MockPasswordVerifier implements auth.PasswordVerifier. Tests store fake
// hashes as plain strings and flip ShouldSucceed instead of producing real
// bcrypt output.
type MockPasswordVerifier struct {
	ShouldSucceed bool

	// CompareFn overrides the default behavior when set.
	CompareFn func(hash, candidate string) error
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

func (m *MockPasswordVerifier) Compare(hash, candidate string) error {
	switch {
	case m.CompareFn != nil:
		return m.CompareFn(hash, candidate)
	case m.ShouldSucceed:
		return nil
	default:
		return ErrPasswordMismatch
	}
}
