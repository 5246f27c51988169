package mocks

import (
	"context"
	"fmt"

	"github.com/1himan/task-management-assignment/internal/cache"
	"github.com/1himan/task-management-assignment/internal/domain"
)

// MockTaskListCache implements cache.TaskListCache for testing
type MockTaskListCache struct {
	// Function fields for customizable behavior
	GetListFn    func(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)
	SetListFn    func(ctx context.Context, filter domain.TaskFilter, tasks []*domain.Task) error
	InvalidateFn func(ctx context.Context) error

	// Data for default implementation, keyed by filter combination
	Entries map[string][]*domain.Task

	// Errors returned by the default implementations when set
	GetListError    error
	SetListError    error
	InvalidateError error

	// Call counters for verifying interactions
	GetListCallCount    int
	SetListCallCount    int
	InvalidateCallCount int
}

var _ cache.TaskListCache = (*MockTaskListCache)(nil)

// NewMockTaskListCache creates a new mock cache with initialized defaults
func NewMockTaskListCache() *MockTaskListCache {
	return &MockTaskListCache{
		Entries: make(map[string][]*domain.Task),
	}
}

// entryKey folds a filter into a map key for the default implementation.
func entryKey(filter domain.TaskFilter) string {
	return fmt.Sprintf("%s|%s", filter.Status, filter.Priority)
}

// GetList implements the TaskListCache interface
func (m *MockTaskListCache) GetList(
	ctx context.Context,
	filter domain.TaskFilter,
) ([]*domain.Task, error) {
	m.GetListCallCount++

	if m.GetListFn != nil {
		return m.GetListFn(ctx, filter)
	}

	if m.GetListError != nil {
		return nil, m.GetListError
	}

	tasks, exists := m.Entries[entryKey(filter)]
	if !exists {
		return nil, cache.ErrCacheMiss
	}

	return tasks, nil
}

// SetList implements the TaskListCache interface
func (m *MockTaskListCache) SetList(
	ctx context.Context,
	filter domain.TaskFilter,
	tasks []*domain.Task,
) error {
	m.SetListCallCount++

	if m.SetListFn != nil {
		return m.SetListFn(ctx, filter, tasks)
	}

	if m.SetListError != nil {
		return m.SetListError
	}

	m.Entries[entryKey(filter)] = tasks
	return nil
}

// Invalidate implements the TaskListCache interface
func (m *MockTaskListCache) Invalidate(ctx context.Context) error {
	m.InvalidateCallCount++

	if m.InvalidateFn != nil {
		return m.InvalidateFn(ctx)
	}

	if m.InvalidateError != nil {
		return m.InvalidateError
	}

	m.Entries = make(map[string][]*domain.Task)
	return nil
}
