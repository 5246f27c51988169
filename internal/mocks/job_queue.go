package mocks

import (
	"github.com/1himan/task-management-assignment/internal/worker"
)

// MockJobQueue implements worker.JobQueueWriter for testing
type MockJobQueue struct {
	// EnqueueFn allows test cases to mock the Enqueue behavior
	EnqueueFn func(job worker.Job) error

	// EnqueueError is returned by the default Enqueue when set
	EnqueueError error

	// Enqueued records every job passed to the default Enqueue
	Enqueued []worker.Job

	// CloseCallCount tracks how many times Close was called
	CloseCallCount int
}

var _ worker.JobQueueWriter = (*MockJobQueue)(nil)

// Enqueue implements the worker.JobQueueWriter interface
func (m *MockJobQueue) Enqueue(job worker.Job) error {
	if m.EnqueueFn != nil {
		return m.EnqueueFn(job)
	}

	if m.EnqueueError != nil {
		return m.EnqueueError
	}

	m.Enqueued = append(m.Enqueued, job)
	return nil
}

// Close implements the worker.JobQueueWriter interface
func (m *MockJobQueue) Close() {
	m.CloseCallCount++
}
