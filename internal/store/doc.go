// Package store defines the persistence interfaces and errors used by the
// application. Concrete implementations live under internal/platform and
// are injected where needed, keeping business logic independent of the
// storage backend.
package store
