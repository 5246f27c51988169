package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/1himan/task-management-assignment/internal/cache"
	"github.com/1himan/task-management-assignment/internal/domain"
	"github.com/1himan/task-management-assignment/internal/platform/logger"
	"github.com/1himan/task-management-assignment/internal/store"
	"github.com/1himan/task-management-assignment/internal/worker"
)

// taskListLimit caps every task listing the service performs.
const taskListLimit = 100

// refreshJobName identifies cache re-warm jobs in worker pool logs.
const refreshJobName = "task_list_refresh"

// TaskService provides task-related operations. Reads are served through
// the list cache when one is configured; every write invalidates the
// cached lists and schedules a background re-warm of the unfiltered list.
type TaskService interface {
	// CreateTask persists a new task and fills in its generated ID.
	CreateTask(ctx context.Context, task *domain.Task) error

	// GetTask retrieves a single task by its ID.
	// Returns store.ErrTaskNotFound if the task does not exist.
	GetTask(ctx context.Context, id string) (*domain.Task, error)

	// ListTasks retrieves tasks matching the filter, newest first. The
	// result may come from the cache; cache failures silently degrade to
	// a store read.
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)

	// UpdateTask replaces the mutable fields of an existing task.
	// Returns store.ErrTaskNotFound if the task does not exist and
	// domain.ErrInvalidID if the ID is malformed.
	UpdateTask(ctx context.Context, task *domain.Task) error

	// DeleteTask removes a task by its ID.
	// Returns store.ErrTaskNotFound if the task does not exist and
	// domain.ErrInvalidID if the ID is malformed.
	DeleteTask(ctx context.Context, id string) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore

	// listCache may be nil when caching is disabled by configuration;
	// every cache interaction must tolerate that.
	listCache cache.TaskListCache

	// jobQueue receives cache re-warm jobs. May be nil, which only
	// disables background re-warming, not correctness.
	jobQueue worker.JobQueueWriter

	logger *slog.Logger
}

// NewTaskService creates a new TaskService. The task store is required;
// listCache and jobQueue are optional and may be nil when caching or
// background processing is disabled.
func NewTaskService(
	taskStore store.TaskStore,
	listCache cache.TaskListCache,
	jobQueue worker.JobQueueWriter,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, NewTaskServiceError("create_service", "taskStore cannot be nil", nil)
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		listCache: listCache,
		jobQueue:  jobQueue,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// Ensure taskServiceImpl implements TaskService interface
var _ TaskService = (*taskServiceImpl)(nil)

// CreateTask implements TaskService.CreateTask
// After the write it drops every cached list so no listing can miss the
// new task, then schedules a background re-warm of the unfiltered list.
func (s *taskServiceImpl) CreateTask(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Create(ctx, task); err != nil {
		return err
	}

	s.invalidateLists(ctx, log)
	s.enqueueListRefresh(log)

	log.Debug("task created", slog.String("task_id", task.ID))
	return nil
}

// GetTask implements TaskService.GetTask
// Single tasks are read straight from the store; only listings are cached.
func (s *taskServiceImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return s.taskStore.GetByID(ctx, id)
}

// ListTasks implements TaskService.ListTasks
// The cache is consulted first. Any cache failure other than a plain miss
// is logged and treated as a miss: the caller always gets an answer as
// long as the store is healthy.
func (s *taskServiceImpl) ListTasks(
	ctx context.Context,
	filter domain.TaskFilter,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if s.listCache != nil {
		tasks, err := s.listCache.GetList(ctx, filter)
		if err == nil {
			return tasks, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Warn("task list cache read failed, falling back to store",
				slog.String("error", err.Error()))
		}
	}

	tasks, err := s.taskStore.List(ctx, filter, taskListLimit)
	if err != nil {
		return nil, err
	}

	if s.listCache != nil {
		if err := s.listCache.SetList(ctx, filter, tasks); err != nil {
			log.Warn("failed to populate task list cache",
				slog.String("error", err.Error()))
		}
	}

	return tasks, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Update(ctx, task); err != nil {
		return err
	}

	s.invalidateLists(ctx, log)
	s.enqueueListRefresh(log)

	log.Debug("task updated", slog.String("task_id", task.ID))
	return nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateLists(ctx, log)
	s.enqueueListRefresh(log)

	log.Debug("task deleted", slog.String("task_id", id))
	return nil
}

// invalidateLists drops every cached task list. Failures are logged, not
// returned: a write that reached the store has succeeded, and a surviving
// stale entry expires with its TTL.
func (s *taskServiceImpl) invalidateLists(ctx context.Context, log *slog.Logger) {
	if s.listCache == nil {
		return
	}

	if err := s.listCache.Invalidate(ctx); err != nil {
		log.Warn("failed to invalidate task list cache",
			slog.String("error", err.Error()))
	}
}

// enqueueListRefresh schedules a background re-warm of the unfiltered
// task list so the next listing after a write is served from cache. The
// job is best effort: a full queue drops it and the next read re-fills
// the cache lazily instead.
func (s *taskServiceImpl) enqueueListRefresh(log *slog.Logger) {
	if s.jobQueue == nil || s.listCache == nil {
		return
	}

	job := worker.NewJob(refreshJobName, func(ctx context.Context) error {
		tasks, err := s.taskStore.List(ctx, domain.TaskFilter{}, taskListLimit)
		if err != nil {
			return fmt.Errorf("failed to list tasks for cache refresh: %w", err)
		}
		if err := s.listCache.SetList(ctx, domain.TaskFilter{}, tasks); err != nil {
			return fmt.Errorf("failed to cache refreshed task list: %w", err)
		}
		return nil
	})

	if err := s.jobQueue.Enqueue(job); err != nil {
		log.Debug("skipping task list cache refresh",
			slog.String("error", err.Error()))
	}
}
