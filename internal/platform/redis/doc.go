// Package redis provides the Redis-backed implementation of the caching
// interfaces defined in the internal/cache package. It handles client
// connections, cache key construction per filter combination, JSON
// serialization of cached task lists, and translation of client errors
// into cache sentinel errors.
package redis
