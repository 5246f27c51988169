package domain

import (
	"fmt"
	"time"
)

// User validation errors. All of them satisfy errors.Is(err, ErrValidation)
// so the API layer maps them to a 400 without naming each one.
var (
	ErrEmptyUsername    = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrUsernameTooShort = fmt.Errorf("%w: username must be at least 3 characters long", ErrValidation)
	ErrUsernameTooLong  = fmt.Errorf("%w: username must be at most 50 characters long", ErrValidation)
	ErrEmptyPassword    = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	ErrPasswordTooLong  = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
)

// Username and password length bounds. The password maximum is bcrypt's
// practical input limit.
const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 8
	maxPasswordLength = 72
)

// User represents a registered user of the task manager.
// It contains essential account information and authentication details.
// The ID is the hex form of the document store's object ID and is empty
// until the user has been persisted.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with the given username and password and
// stamps the creation timestamp. Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The store is responsible for hashing it before persistence.
func NewUser(username, password string) (*User, error) {
	user := &User{
		Username:  username,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) < minUsernameLength {
		return ErrUsernameTooShort
	}
	if len(u.Username) > maxUsernameLength {
		return ErrUsernameTooLong
	}

	// During registration the plaintext password must pass the length
	// bounds; for users loaded from storage only the hash is present.
	if u.Password != "" {
		if len(u.Password) < minPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > maxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
