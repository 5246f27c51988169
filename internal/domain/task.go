package domain

import (
	"fmt"
	"time"
)

// Task validation errors. All of them satisfy errors.Is(err, ErrValidation)
// so the API layer maps them to a 400 without naming each one.
var (
	ErrEmptyTaskTitle   = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrTaskTitleTooLong = fmt.Errorf("%w: task title must be at most 200 characters long", ErrValidation)
)

// maxTitleLength caps task titles to keep list payloads bounded.
const maxTitleLength = 200

// Status represents the completion state of a task.
type Status string

// Known task statuses.
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// ParseStatus converts a raw string into a Status.
// Returns ErrInvalidStatus if the value is not a known status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// Priority represents the urgency of a task.
type Priority string

// Known task priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether the priority is one of the known values.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ParsePriority converts a raw string into a Priority.
// Returns ErrInvalidPriority if the value is not a known priority.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(raw)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, raw)
	}
	return p, nil
}

// Task represents a single unit of work tracked by the application.
// The ID is the hex form of the document store's object ID and is empty
// until the task has been persisted.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a new Task with the given attributes and stamps the
// creation/update timestamps. Returns an error if validation fails.
func NewTask(title, description string, status Status, priority Priority) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	if len(t.Title) > maxTitleLength {
		return ErrTaskTitleTooLong
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	return nil
}

// TaskFilter narrows task list queries. Zero-valued fields are ignored,
// so an empty filter matches every task.
type TaskFilter struct {
	Status   Status
	Priority Priority
}

// Validate checks that any set filter fields hold known values.
func (f TaskFilter) Validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, f.Status)
	}
	if f.Priority != "" && !f.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, f.Priority)
	}
	return nil
}

// IsZero reports whether the filter constrains nothing.
func (f TaskFilter) IsZero() bool {
	return f.Status == "" && f.Priority == ""
}
