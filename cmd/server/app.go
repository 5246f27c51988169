package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/1himan/task-management-assignment/internal/cache"
	"github.com/1himan/task-management-assignment/internal/config"
	"github.com/1himan/task-management-assignment/internal/platform/mongodb"
	"github.com/1himan/task-management-assignment/internal/platform/redis"
	"github.com/1himan/task-management-assignment/internal/service"
	"github.com/1himan/task-management-assignment/internal/service/auth"
	"github.com/1himan/task-management-assignment/internal/store"
	"github.com/1himan/task-management-assignment/internal/worker"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger      *slog.Logger
	mongoClient *mongo.Client
	redisClient *goredis.Client

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	taskStore store.TaskStore

	// Caching
	listCache cache.TaskListCache

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	taskService      service.TaskService

	// Background processing
	jobQueue   *worker.JobQueue
	workerPool *worker.Pool
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// the database connections that must be established before application
// initialization. redisClient may be nil when caching is disabled.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	mongoClient *mongo.Client,
	mongoDB *mongo.Database,
	redisClient *goredis.Client,
) (*application, error) {
	app := &application{
		config:      cfg,
		logger:      logger,
		mongoClient: mongoClient,
		redisClient: redisClient,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"refresh_token_lifetime_minutes", cfg.Auth.RefreshTokenLifetimeMinutes)

	// Initialize password verifier
	app.passwordVerifier = auth.NewBcryptVerifier()

	// Initialize stores
	app.userStore = mongodb.NewMongoUserStore(mongoDB, cfg.Auth.BCryptCost, logger)
	app.taskStore = mongodb.NewMongoTaskStore(mongoDB, logger)

	// Initialize the task list cache when Redis is available
	if redisClient != nil {
		app.listCache = redis.NewRedisTaskListCache(
			redisClient,
			time.Duration(cfg.Cache.TaskListTTLSeconds)*time.Second,
			logger,
		)
	}

	// Initialize background processing for cache re-warming
	app.jobQueue = worker.NewJobQueue(cfg.Worker.QueueSize, logger)
	app.workerPool = worker.NewPool(app.jobQueue, cfg.Worker, logger)
	app.workerPool.Start()

	// Initialize task service
	app.taskService, err = service.NewTaskService(
		app.taskStore,
		app.listCache,
		app.jobQueue,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	// Stop accepting new jobs, then wait for in-flight ones
	if app.jobQueue != nil {
		app.jobQueue.Close()
	}
	if app.workerPool != nil {
		app.workerPool.Stop()
	}

	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("Error closing Redis connection", "error", err)
		}
	}

	if app.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.mongoClient.Disconnect(ctx); err != nil {
			app.logger.Error("Error closing MongoDB connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
