package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/1himan/task-management-assignment/internal/config"
)

// Pool manages a set of worker goroutines that process jobs from a job
// queue. It handles panic isolation and graceful shutdown.
type Pool struct {
	// queue provides read access to the jobs to be processed.
	queue JobQueueReader

	// workerCount is the number of concurrent workers to start.
	workerCount int

	// wg tracks active worker goroutines for clean shutdown.
	wg sync.WaitGroup

	// ctx is canceled on Stop and passed to every job execution.
	ctx    context.Context
	cancel context.CancelFunc

	logger *slog.Logger

	// errorHandler is called when a job execution fails or panics.
	// If nil, failures are only logged.
	errorHandler func(job Job, err error)
}

// NewPool creates a worker pool consuming from queue. A non-positive
// worker count falls back to a single worker. It panics if queue is
// nil.
func NewPool(queue JobQueueReader, cfg config.WorkerConfig, logger *slog.Logger) *Pool {
	if queue == nil {
		panic("queue cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "worker_pool"))

	workerCount := cfg.Count
	if workerCount <= 0 {
		workerCount = 1
		logger.Warn("invalid worker count configured, using default",
			slog.Int("configured_count", cfg.Count),
			slog.Int("default_count", workerCount))
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		queue:       queue,
		workerCount: workerCount,
		ctx:         ctx,
		cancel:      cancel,
		logger:      logger,
	}
}

// SetErrorHandler installs a handler invoked when a job fails or
// panics.
func (p *Pool) SetErrorHandler(handler func(job Job, err error)) {
	p.errorHandler = handler
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	p.logger.Info("starting worker pool", slog.Int("worker_count", p.workerCount))

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Stop cancels the context given to in-flight jobs and waits for all
// workers to exit. Jobs still sitting in the queue are abandoned.
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()
	p.logger.Info("worker pool stopped")
}

// worker consumes jobs until the pool shuts down or the queue is
// closed and drained.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	p.logger.Debug("starting worker", slog.Int("worker_id", id))

	for {
		select {
		case <-p.ctx.Done():
			p.logger.Debug("stopping worker", slog.Int("worker_id", id))
			return

		case job, ok := <-p.queue.GetChannel():
			if !ok {
				p.logger.Debug("job channel closed, stopping worker", slog.Int("worker_id", id))
				return
			}
			p.processJob(job, id)
		}
	}
}

// processJob executes a single job, recovering from panics so a
// misbehaving job cannot take down its worker.
func (p *Pool) processJob(job Job, workerID int) {
	log := p.logger.With(
		slog.String("job_name", job.Name()),
		slog.Int("worker_id", workerID),
	)

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("job panicked: %v", r)
			log.Error("job execution panicked", slog.Any("panic_value", r))
			if p.errorHandler != nil {
				p.errorHandler(job, err)
			}
		}
	}()

	log.Debug("processing job")

	if err := job.Execute(p.ctx); err != nil {
		log.Error("job execution failed", slog.String("error", err.Error()))
		if p.errorHandler != nil {
			p.errorHandler(job, err)
		}
		return
	}

	log.Debug("job completed")
}
