// Package main implements the entry point for the task management API
// server. It wires configuration, logging, MongoDB and Redis connections,
// background workers, and the HTTP server together.
package main

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/redis/go-redis/v9"

	"github.com/1himan/task-management-assignment/internal/config"
	"github.com/1himan/task-management-assignment/internal/platform/logger"
	"github.com/1himan/task-management-assignment/internal/platform/mongodb"
	"github.com/1himan/task-management-assignment/internal/platform/redis"
)

func main() {
	fmt.Println("Task Management API Server Starting...")

	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, establishes the
// MongoDB and Redis connections, and assembles the application with all
// dependencies injected. The returned application owns the connections
// and releases them during shutdown.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"cache_enabled", cfg.Cache.Enabled)

	mongoClient, mongoDB, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	appLogger.Info("Connected to MongoDB", "database", cfg.Mongo.Database)

	if err := mongodb.EnsureIndexes(ctx, mongoDB); err != nil {
		return nil, fmt.Errorf("failed to ensure mongodb indexes: %w", err)
	}

	// The API works without Redis, just without the list cache.
	var redisClient *goredis.Client
	if cfg.Cache.Enabled {
		redisClient, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		appLogger.Info("Connected to Redis",
			"host", cfg.Redis.Host,
			"port", cfg.Redis.Port)
	} else {
		appLogger.Info("Task list cache disabled, skipping Redis connection")
	}

	app, err := newApplication(cfg, appLogger, mongoClient, mongoDB, redisClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return app, nil
}
