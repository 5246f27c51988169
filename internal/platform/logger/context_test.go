package logger_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/1himan/task-management-assignment/internal/platform/logger"
)

// namedLogger builds a logger that tags every record with a name and
// returns the buffer its output lands in, so tests can tell loggers apart
// by what they write instead of by pointer identity.
func namedLogger(name string) (*slog.Logger, *strings.Builder) {
	var buf strings.Builder
	log := slog.New(slog.NewTextHandler(&buf, nil)).With("logger_name", name)
	return log, &buf
}

func TestWithLoggerRoundTrip(t *testing.T) {
	requestLog, buf := namedLogger("request")
	ctx := logger.WithLogger(context.Background(), requestLog)

	logger.FromContext(ctx).Info("handling request")

	assert.Contains(t, buf.String(), "logger_name=request")
	assert.Contains(t, buf.String(), "handling request")
}

func TestWithLoggerRejectsNil(t *testing.T) {
	assert.Panics(t, func() {
		logger.WithLogger(context.Background(), nil)
	})
}

func TestInnerLoggerShadowsOuter(t *testing.T) {
	outer, outerBuf := namedLogger("outer")
	inner, innerBuf := namedLogger("inner")

	ctx := logger.WithLogger(context.Background(), outer)
	ctx = logger.WithLogger(ctx, inner)

	logger.FromContext(ctx).Info("scoped work")

	assert.Contains(t, innerBuf.String(), "logger_name=inner")
	assert.Empty(t, outerBuf.String())
}

func TestLoggerSurvivesContextDerivation(t *testing.T) {
	requestLog, buf := namedLogger("request")
	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), requestLog))
	defer cancel()

	logger.FromContext(ctx).Info("derived context")

	assert.Contains(t, buf.String(), "logger_name=request")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	assert.Same(t, slog.Default(), logger.FromContext(nil)) //nolint:staticcheck // nil context is the case under test
}

func TestFromContextOrDefault(t *testing.T) {
	fallback, fallbackBuf := namedLogger("component")

	t.Run("empty context uses the fallback", func(t *testing.T) {
		logger.FromContextOrDefault(context.Background(), fallback).Info("no request scope")
		assert.Contains(t, fallbackBuf.String(), "logger_name=component")
	})

	t.Run("request-scoped logger wins over the fallback", func(t *testing.T) {
		scoped, scopedBuf := namedLogger("request")
		ctx := logger.WithLogger(context.Background(), scoped)

		logger.FromContextOrDefault(ctx, fallback).Info("request scope wins")

		assert.Contains(t, scopedBuf.String(), "logger_name=request")
		assert.NotContains(t, fallbackBuf.String(), "request scope wins")
	})

	t.Run("nil context uses the fallback", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(nil, fallback)) //nolint:staticcheck // nil context is the case under test
	})
}
