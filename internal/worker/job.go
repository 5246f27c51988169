package worker

import "context"

// Job represents a unit of background work to be processed.
type Job interface {
	// Name returns a short identifier for the job, used in logs.
	Name() string

	// Execute runs the job logic. The context is canceled when the
	// pool shuts down, so long-running jobs should honor it.
	Execute(ctx context.Context) error
}

// JobQueueReader provides read-only access to the job channel,
// allowing workers to consume jobs without the ability to enqueue.
type JobQueueReader interface {
	// GetChannel returns a read-only channel for consuming jobs.
	GetChannel() <-chan Job
}

// JobQueueWriter provides write access to the job queue, allowing
// services to enqueue jobs for processing.
type JobQueueWriter interface {
	// Enqueue adds a job to the queue for processing.
	// Returns an error if the queue is full or closed.
	Enqueue(job Job) error

	// Close closes the job queue, preventing further job submission.
	Close()
}

// jobFunc adapts a plain function to the Job interface.
type jobFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func (j jobFunc) Name() string { return j.name }

func (j jobFunc) Execute(ctx context.Context) error { return j.fn(ctx) }

// NewJob wraps fn as a Job identified by name in logs. It panics if fn
// is nil.
func NewJob(name string, fn func(ctx context.Context) error) Job {
	if fn == nil {
		panic("worker.NewJob: nil fn")
	}
	return jobFunc{name: name, fn: fn}
}
