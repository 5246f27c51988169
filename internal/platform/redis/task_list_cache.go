package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/1himan/task-management-assignment/internal/cache"
	"github.com/1himan/task-management-assignment/internal/domain"
	"github.com/1himan/task-management-assignment/internal/platform/logger"
)

// Cache key layout. Every filter combination gets its own key so a cached
// filtered listing can never be served for a different filter. The "any"
// value stands in for an unset filter field, which keeps the key space a
// small closed set that Invalidate can delete in a single command.
const (
	taskListKeyPrefix = "tasks"
	anyValue          = "any"
)

// listKey builds the cache key for a filter combination.
func listKey(filter domain.TaskFilter) string {
	status := anyValue
	if filter.Status != "" {
		status = string(filter.Status)
	}
	priority := anyValue
	if filter.Priority != "" {
		priority = string(filter.Priority)
	}
	return fmt.Sprintf("%s:status=%s:priority=%s", taskListKeyPrefix, status, priority)
}

// allListKeys enumerates the full cache key space: the cross product of
// every status value (plus "any") and every priority value (plus "any").
func allListKeys() []string {
	statuses := []string{
		string(domain.StatusPending),
		string(domain.StatusCompleted),
		anyValue,
	}
	priorities := []string{
		string(domain.PriorityLow),
		string(domain.PriorityMedium),
		string(domain.PriorityHigh),
		anyValue,
	}

	keys := make([]string, 0, len(statuses)*len(priorities))
	for _, s := range statuses {
		for _, p := range priorities {
			keys = append(keys, fmt.Sprintf("%s:status=%s:priority=%s", taskListKeyPrefix, s, p))
		}
	}
	return keys
}

// RedisTaskListCache implements the cache.TaskListCache interface using a
// Redis instance as the backend. Cached lists are stored as JSON under one
// key per filter combination and expire after the configured TTL.
type RedisTaskListCache struct {
	client *goredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisTaskListCache creates a new Redis implementation of the
// TaskListCache interface. It accepts a client that should be initialized
// and managed by the caller and the TTL applied to cached lists.
// If logger is nil, a default logger will be used.
func NewRedisTaskListCache(
	client *goredis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *RedisTaskListCache {
	if client == nil {
		panic("client cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &RedisTaskListCache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "task_list_cache")),
	}
}

// Ensure RedisTaskListCache implements cache.TaskListCache interface
var _ cache.TaskListCache = (*RedisTaskListCache)(nil)

// GetList implements cache.TaskListCache.GetList
// Returns cache.ErrCacheMiss if no entry exists for the filter and
// cache.ErrCacheUnavailable if the backend cannot be reached.
func (c *RedisTaskListCache) GetList(
	ctx context.Context,
	filter domain.TaskFilter,
) ([]*domain.Task, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, c.logger)

	key := listKey(filter)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			log.Debug("task list cache miss", slog.String("key", key))
			return nil, cache.ErrCacheMiss
		}
		log.Warn("task list cache unavailable",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", cache.ErrCacheUnavailable, err)
	}

	var tasks []*domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		// A corrupt entry is useless; drop it and report a miss so the
		// caller refreshes from the store.
		log.Warn("dropping corrupt task list cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		if delErr := c.client.Del(ctx, key).Err(); delErr != nil {
			log.Warn("failed to drop corrupt cache entry",
				slog.String("key", key),
				slog.String("error", delErr.Error()))
		}
		return nil, cache.ErrCacheMiss
	}

	log.Debug("task list cache hit",
		slog.String("key", key),
		slog.Int("count", len(tasks)))
	return tasks, nil
}

// SetList implements cache.TaskListCache.SetList
// The entry expires after the TTL the cache was constructed with.
func (c *RedisTaskListCache) SetList(
	ctx context.Context,
	filter domain.TaskFilter,
	tasks []*domain.Task,
) error {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, c.logger)

	key := listKey(filter)

	data, err := json.Marshal(tasks)
	if err != nil {
		log.Error("failed to marshal task list for caching",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to marshal task list: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Warn("failed to cache task list",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", cache.ErrCacheUnavailable, err)
	}

	log.Debug("cached task list",
		slog.String("key", key),
		slog.Int("count", len(tasks)),
		slog.Duration("ttl", c.ttl))
	return nil
}

// Invalidate implements cache.TaskListCache.Invalidate
// It deletes every filter combination's key in a single command so no
// stale listing can survive a write.
func (c *RedisTaskListCache) Invalidate(ctx context.Context) error {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, c.logger)

	keys := allListKeys()
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Warn("failed to invalidate task list cache",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", cache.ErrCacheUnavailable, err)
	}

	log.Debug("invalidated task list cache", slog.Int("keys", len(keys)))
	return nil
}
