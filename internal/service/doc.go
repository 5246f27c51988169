// Package service implements the task management use cases on top of the
// store, cache, and worker abstractions.
//
// TaskService is the only entry point handlers call for task operations.
// It validates filters, applies defaults on creation, and keeps the list
// cache coherent: reads try the cache before the store, writes invalidate
// and hand re-warming to the background worker pool. The cache is strictly
// an optimization; when it fails the service falls back to the store and
// the request still succeeds.
//
// Services depend on the interfaces in internal/store and internal/cache,
// never on the MongoDB or Redis implementations behind them.
package service
