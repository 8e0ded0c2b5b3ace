package logger

import (
	"log/slog"
	"os"
)

var base *slog.Logger

// Init configures the process-wide logger. Production emits JSON at
// info level, every other environment gets human-readable text at debug.
func Init(env string) {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	var handler slog.Handler
	switch env {
	case "production":
		opts.Level = slog.LevelInfo
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	base = slog.New(handler)
	slog.SetDefault(base)
}

// LoggerWrapper returns the configured logger, initializing a
// development one on first use so callers never see nil.
func LoggerWrapper() *slog.Logger {
	if base == nil {
		Init("development")
	}
	return base
}
