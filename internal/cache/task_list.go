package cache

import (
	"context"
	"errors"

	"github.com/1himan/task-management-assignment/internal/domain"
)

// Common cache errors.
var (
	// ErrCacheMiss is returned when the requested entry is not cached.
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache backend cannot be
	// reached. Callers should degrade to the store.
	ErrCacheUnavailable = errors.New("cache unavailable")
)

// TaskListCache caches task list query results keyed by filter combination.
type TaskListCache interface {
	// GetList returns the cached task list for the filter.
	// Returns ErrCacheMiss if no entry exists or the entry has expired.
	GetList(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)

	// SetList caches the task list for the filter with the configured TTL.
	SetList(ctx context.Context, filter domain.TaskFilter, tasks []*domain.Task) error

	// Invalidate drops every cached task list, across all filter
	// combinations. Called after any task write.
	Invalidate(ctx context.Context) error
}
