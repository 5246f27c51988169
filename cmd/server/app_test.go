package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1himan/task-management-assignment/internal/config"
	"github.com/1himan/task-management-assignment/internal/worker"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8000,
			LogLevel:               "error",
			ShutdownTimeoutSeconds: 5,
		},
		Auth: config.AuthConfig{
			JWTSecret:                   "test-jwt-secret-that-is-32-chars-or-more",
			TokenLifetimeMinutes:        60,
			RefreshTokenLifetimeMinutes: 10080,
			BCryptCost:                  4,
		},
		Worker: config.WorkerConfig{Count: 1, QueueSize: 10},
	}
}

func TestNewApplicationRejectsBadAuthConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.JWTSecret = "too-short"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app, err := newApplication(cfg, logger, nil, nil, nil)

	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), "JWT service")
}

func TestNewApplicationRequiresDatabase(t *testing.T) {
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Store construction requires a database handle
	assert.Panics(t, func() {
		_, _ = newApplication(cfg, logger, nil, nil, nil)
	})
}

func TestApplicationCleanup(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("minimal application", func(t *testing.T) {
		app := &application{logger: logger}

		require.NotPanics(t, func() {
			app.cleanup()
		})
	})

	t.Run("stops workers and closes queue", func(t *testing.T) {
		cfg := testConfig()
		queue := worker.NewJobQueue(cfg.Worker.QueueSize, logger)
		pool := worker.NewPool(queue, cfg.Worker, logger)
		pool.Start()

		app := &application{
			config:     cfg,
			logger:     logger,
			jobQueue:   queue,
			workerPool: pool,
		}

		require.NotPanics(t, func() {
			app.cleanup()
		})

		// The queue rejects work after shutdown
		noop := worker.NewJob("noop", func(ctx context.Context) error { return nil })
		err := queue.Enqueue(noop)
		assert.ErrorIs(t, err, worker.ErrQueueClosed)
	})
}
