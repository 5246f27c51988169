package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/1himan/task-management-assignment/internal/config"
)

// Rotation settings for the optional file sink.
const (
	logFileMaxSizeMB  = 100
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// Setup builds the application logger from cfg and installs it as the
// process-wide default, so both the returned handle and the slog package
// functions write the same JSON stream.
//
// Records go to stdout; when cfg.LogFile is set they are mirrored into a
// size-rotated file as well.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	// slog accepts the level names case-insensitively, with optional
	// numeric offsets like "error-8".
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		// The JSON logger does not exist yet, so the warning goes to a
		// throwaway stderr logger.
		level = slog.LevelInfo
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Warn(
			"invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	sink := io.Writer(os.Stdout)
	if cfg.LogFile != "" {
		sink = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
			Compress:   true,
		})
	}

	log := slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	return log, nil
}
