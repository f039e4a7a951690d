package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger wraps slog.Logger with vecmath-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a text Logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		})),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(io.Discard, slog.Level(1000))
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", s)
	}
}

// WithOperation adds an operation field to the logger.
func (l *Logger) WithOperation(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// LogLoad logs loading a dataset.
func (l *Logger) LogLoad(ctx context.Context, name string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "dataset load failed",
			"dataset", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "dataset loaded",
			"dataset", name,
			"vectors", count,
		)
	}
}

// LogSave logs writing a dataset.
func (l *Logger) LogSave(ctx context.Context, name string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "dataset save failed",
			"dataset", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "dataset saved",
			"dataset", name,
			"vectors", count,
		)
	}
}

// LogCompute logs an arithmetic operation over inputs vectors of the given dimension.
func (l *Logger) LogCompute(ctx context.Context, inputs, dimension int, err error) {
	if err != nil {
		l.WarnContext(ctx, "operation rejected",
			"inputs", inputs,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "operation completed",
			"inputs", inputs,
			"dimension", dimension,
		)
	}
}
