package mocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/1himan/task-management-assignment/internal/domain"
	"github.com/1himan/task-management-assignment/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, id string) (*domain.Task, error)
	ListFn    func(ctx context.Context, filter domain.TaskFilter, limit int) ([]*domain.Task, error)
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, id string) error

	// Data for default implementation, keyed by task ID
	Tasks       map[string]*domain.Task
	CreateError error
	ListError   error

	nextID int
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[string]*domain.Task),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := task.Validate(); err != nil {
		return err
	}

	m.nextID++
	task.ID = fakeObjectID(m.nextID)

	m.Tasks[task.ID] = task
	return nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	task, exists := m.Tasks[id]
	if !exists {
		return nil, fmt.Errorf("%w: %q", store.ErrTaskNotFound, id)
	}

	return task, nil
}

// List implements the TaskStore interface
func (m *MockTaskStore) List(
	ctx context.Context,
	filter domain.TaskFilter,
	limit int,
) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, limit)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, task := range m.Tasks {
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && task.Priority != filter.Priority {
			continue
		}
		tasks = append(tasks, task)
	}

	// Newest first, matching the real store's sort order
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	if limit > 0 && len(tasks) > limit {
		tasks = tasks[:limit]
	}

	return tasks, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	if err := task.Validate(); err != nil {
		return err
	}

	existing, exists := m.Tasks[task.ID]
	if !exists {
		return fmt.Errorf("%w: %q", store.ErrTaskNotFound, task.ID)
	}

	existing.Title = task.Title
	existing.Description = task.Description
	existing.Status = task.Status
	existing.Priority = task.Priority
	existing.UpdatedAt = time.Now().UTC()
	task.UpdatedAt = existing.UpdatedAt
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Tasks[id]; !exists {
		return fmt.Errorf("%w: %q", store.ErrTaskNotFound, id)
	}

	delete(m.Tasks, id)
	return nil
}
