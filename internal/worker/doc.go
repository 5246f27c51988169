// Package worker provides an in-memory background job queue and a pool
// of worker goroutines that drain it. It is used for work that should
// not block HTTP request handling, such as re-warming the task list
// cache after a mutation. Jobs are ephemeral: they live only in process
// memory and are dropped on shutdown.
package worker
