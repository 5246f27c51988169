package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// startHTTPServer runs the HTTP server until a termination signal arrives,
// the context is canceled, or the listener fails. It drains in-flight
// requests within the configured shutdown timeout and then releases the
// application's resources.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Listener failures surface on the channel so the select below can
	// tell a crash apart from an orderly shutdown.
	listenErr := make(chan error, 1)
	go func() {
		app.logger.Info("HTTP server listening", "port", app.config.Server.Port)
		listenErr <- server.ListenAndServe()
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	select {
	case sig := <-shutdownCh:
		app.logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		app.logger.Info("Server context canceled, shutting down")
	case err := <-listenErr:
		app.cleanup()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	}

	// Bound how long in-flight requests get to finish.
	shutdownTimeout := time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	app.cleanup()
	if err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
