// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1himan/task-management-assignment/internal/config"
	"github.com/1himan/task-management-assignment/internal/platform/logger"
)

// redirectStdout replaces os.Stdout with a pipe for the duration of the test
// so Setup's JSON output does not pollute the test output. The captured
// output is returned by the drain function.
func redirectStdout(t *testing.T) (drain func() string) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdout pipe: %v", err)
	}
	os.Stdout = w

	return func() string {
		os.Stdout = origStdout
		if err := w.Close(); err != nil {
			t.Logf("Failed to close stdout writer: %v", err)
		}
		buf := new(bytes.Buffer)
		if _, err := io.Copy(buf, r); err != nil {
			t.Logf("Failed to drain stdout pipe: %v", err)
		}
		return buf.String()
	}
}

// restoreDefaultLogger undoes Setup's slog.SetDefault side effect after the test.
func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetup(t *testing.T) {
	restoreDefaultLogger(t)
	drain := redirectStdout(t)

	cfg := config.ServerConfig{
		LogLevel: "info",
		Port:     8000,
	}

	log, err := logger.Setup(cfg)

	output := drain()
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if log == nil {
		t.Fatal("Setup returned a nil logger")
	}
	if output != "" {
		t.Errorf("Setup logged unexpectedly during initialization: %s", output)
	}
}

func TestSetupLevelParsing(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel string
		want     slog.Level
	}{
		{
			name:     "debug level",
			logLevel: "debug",
			want:     slog.LevelDebug,
		},
		{
			name:     "info level",
			logLevel: "info",
			want:     slog.LevelInfo,
		},
		{
			name:     "warn level",
			logLevel: "warn",
			want:     slog.LevelWarn,
		},
		{
			name:     "error level",
			logLevel: "error",
			want:     slog.LevelError,
		},
		{
			name:     "case insensitive - DEBUG",
			logLevel: "DEBUG",
			want:     slog.LevelDebug,
		},
		{
			name:     "case insensitive - Info",
			logLevel: "Info",
			want:     slog.LevelInfo,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			restoreDefaultLogger(t)
			drain := redirectStdout(t)

			cfg := config.ServerConfig{
				LogLevel: tc.logLevel,
				Port:     8000,
			}

			log, err := logger.Setup(cfg)

			drain()
			if err != nil {
				t.Fatalf("Setup returned an error for valid log level %q: %v", tc.logLevel, err)
			}
			if log == nil {
				t.Fatal("Setup returned a nil logger")
			}

			// The handler must be enabled exactly from the configured level up.
			ctx := context.Background()
			if !log.Enabled(ctx, tc.want) {
				t.Errorf("logger should be enabled at level %v", tc.want)
			}
			if log.Enabled(ctx, tc.want-1) {
				t.Errorf("logger should not be enabled below level %v", tc.want)
			}
		})
	}
}

// TestSetupInvalidLogLevel verifies that an unknown level falls back to info
// and that a warning naming the bad value is written to stderr.
func TestSetupInvalidLogLevel(t *testing.T) {
	restoreDefaultLogger(t)

	origStderr := os.Stderr
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stderr pipe: %v", err)
	}
	os.Stderr = stderrW

	drain := redirectStdout(t)

	cfg := config.ServerConfig{
		LogLevel: "invalid_level",
		Port:     8000,
	}

	log, setupErr := logger.Setup(cfg)

	drain()
	os.Stderr = origStderr
	if err := stderrW.Close(); err != nil {
		t.Logf("Failed to close stderr writer: %v", err)
	}
	stderrBuf := new(bytes.Buffer)
	if _, err := io.Copy(stderrBuf, stderrR); err != nil {
		t.Logf("Failed to read from stderr pipe: %v", err)
	}
	stderrOutput := stderrBuf.String()

	if setupErr != nil {
		t.Fatalf("Setup returned an error for invalid log level: %v", setupErr)
	}
	if log == nil {
		t.Fatal("Setup returned a nil logger for invalid log level")
	}

	if !strings.Contains(stderrOutput, "invalid log level configured") {
		t.Errorf("Expected warning message about invalid log level, got: %s", stderrOutput)
	}
	if !strings.Contains(stderrOutput, "invalid_level") {
		t.Errorf("Expected warning to include the invalid level name, got: %s", stderrOutput)
	}

	// The fallback level is info: debug records must be filtered out.
	ctx := context.Background()
	if log.Enabled(ctx, slog.LevelDebug) {
		t.Error("Logger with fallback level should not output debug messages")
	}
	if !log.Enabled(ctx, slog.LevelInfo) {
		t.Error("Logger with fallback level should output info messages")
	}
}

// TestSetupFileSink verifies that configuring a log file mirrors JSON records
// into that file in addition to stdout.
func TestSetupFileSink(t *testing.T) {
	restoreDefaultLogger(t)
	drain := redirectStdout(t)

	logFile := filepath.Join(t.TempDir(), "app.log")
	cfg := config.ServerConfig{
		LogLevel: "info",
		LogFile:  logFile,
		Port:     8000,
	}

	log, err := logger.Setup(cfg)
	if err != nil {
		drain()
		t.Fatalf("Setup failed: %v", err)
	}

	log.Info("file sink probe", slog.String("component", "logger_test"))

	stdoutOutput := drain()
	if !strings.Contains(stdoutOutput, "file sink probe") {
		t.Errorf("Expected record on stdout, got: %s", stdoutOutput)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "file sink probe") {
		t.Errorf("Expected record in log file, got: %s", string(data))
	}
	if !strings.Contains(string(data), `"component":"logger_test"`) {
		t.Errorf("Expected JSON attributes in log file, got: %s", string(data))
	}
}
