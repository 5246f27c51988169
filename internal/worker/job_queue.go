package worker

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Common errors returned by the JobQueue.
var (
	ErrQueueClosed = errors.New("job queue is closed")
	ErrQueueFull   = errors.New("job queue is full")
)

// JobQueue implements a buffered job queue that satisfies both
// JobQueueReader and JobQueueWriter interfaces.
type JobQueue struct {
	jobs   chan Job
	logger *slog.Logger

	// mu guards closed and serializes sends against Close so Enqueue
	// can never send on a closed channel.
	mu     sync.Mutex
	closed bool
}

var (
	_ JobQueueReader = (*JobQueue)(nil)
	_ JobQueueWriter = (*JobQueue)(nil)
)

// NewJobQueue creates a new job queue with the specified buffer size.
func NewJobQueue(size int, logger *slog.Logger) *JobQueue {
	if logger == nil {
		logger = slog.Default()
	}

	return &JobQueue{
		jobs:   make(chan Job, size),
		logger: logger.With(slog.String("component", "job_queue")),
	}
}

// Enqueue adds a job to the queue for processing. It never blocks: if
// the queue is at capacity the job is rejected with ErrQueueFull.
func (q *JobQueue) Enqueue(job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		q.logger.Debug("job enqueued",
			slog.String("job_name", job.Name()),
			slog.Int("queue_len", len(q.jobs)),
			slog.Int("queue_cap", cap(q.jobs)))
		return nil
	default:
		return fmt.Errorf("%w: queue capacity %d reached", ErrQueueFull, cap(q.jobs))
	}
}

// Close closes the job queue, preventing further job submission. Jobs
// already queued remain readable until drained.
func (q *JobQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.jobs)
		q.logger.Info("job queue closed")
	}
}

// GetChannel returns a read-only channel for consuming jobs.
func (q *JobQueue) GetChannel() <-chan Job {
	return q.jobs
}
