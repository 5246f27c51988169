package store

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every store implementation. The entity-specific
// errors wrap the generic ones, so errors.Is(err, ErrNotFound) matches
// ErrUserNotFound and ErrTaskNotFound as well.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrDuplicate     = errors.New("entity already exists")
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUserNotFound covers both missing users and malformed user IDs;
	// neither addresses a stored user.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrUsernameExists is surfaced by Create when the username index
	// rejects a duplicate.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)

// StoreError annotates a failure with the entity and operation it happened
// in, for log lines that need more context than the bare sentinel.
type StoreError struct {
	Entity    string
	Operation string
	Message   string
	Err       error
}

func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap exposes the cause so errors.Is sees through the annotation.
func (e *StoreError) Unwrap() error {
	return e.Err
}
