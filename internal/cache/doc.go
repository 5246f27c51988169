// Package cache defines the caching interfaces and errors used by the
// application. Concrete implementations live under internal/platform and
// are injected where needed. Caches are an optimization layer: callers
// must treat every cache failure as a miss and fall back to the store.
package cache
