package plotspec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with plotspec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithVariant adds a variant field to the logger.
func (l *Logger) WithVariant(variant string) *Logger {
	return &Logger{
		Logger: l.Logger.With("variant", variant),
	}
}

// LogConstruct logs an instance construction.
func (l *Logger) LogConstruct(variant string, overrides int, err error) {
	if err != nil {
		l.Error("construct failed",
			"variant", variant,
			"overrides", overrides,
			"error", err,
		)
	} else {
		l.Debug("construct completed",
			"variant", variant,
			"overrides", overrides,
		)
	}
}

// LogMutate logs a field mutation.
func (l *Logger) LogMutate(variant, field string, err error) {
	if err != nil {
		l.Error("mutate failed",
			"variant", variant,
			"field", field,
			"error", err,
		)
	} else {
		l.Debug("mutate completed",
			"variant", variant,
			"field", field,
		)
	}
}

// LogDecode logs a document decode.
func (l *Logger) LogDecode(variant string, size int, err error) {
	if err != nil {
		l.Error("decode failed",
			"variant", variant,
			"bytes", size,
			"error", err,
		)
	} else {
		l.Debug("decode completed",
			"variant", variant,
			"bytes", size,
		)
	}
}
