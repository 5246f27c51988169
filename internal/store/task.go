package store

import (
	"context"

	"github.com/1himan/task-management-assignment/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store and fills in the generated ID
	// on the provided task.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist or the ID is
	// malformed.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// List retrieves tasks matching the filter, newest first, capped at
	// limit documents. An empty filter matches every task.
	// Returns an empty slice if no tasks match.
	List(ctx context.Context, filter domain.TaskFilter, limit int) ([]*domain.Task, error)

	// Update replaces the mutable fields of an existing task and advances
	// its update timestamp.
	// Returns ErrTaskNotFound if the task does not exist and
	// domain.ErrInvalidID if the ID is malformed.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist and
	// domain.ErrInvalidID if the ID is malformed.
	Delete(ctx context.Context, id string) error
}
