// Package domain holds the task and user entities along with the
// validation rules that keep them consistent. Nothing in this package
// knows about HTTP, MongoDB, or Redis; persistence and transport adapt
// to these types rather than the other way around.
package domain
