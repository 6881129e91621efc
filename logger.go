package vecsim

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecsim-specific context.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogCall logs the outcome of a single-pair or normalize operation.
func (l *Logger) LogCall(ctx context.Context, op string, err error) {
	if err != nil {
		l.DebugContext(ctx, "operation rejected",
			"op", op,
			"error", err,
		)
	}
}

// LogBatch logs a batch scoring operation.
func (l *Logger) LogBatch(ctx context.Context, count int, err error) {
	if err != nil {
		l.DebugContext(ctx, "batch scoring rejected",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch scoring completed",
			"count", count,
		)
	}
}

// LogTopK logs a top-k selection.
func (l *Logger) LogTopK(ctx context.Context, count, k, returned int, err error) {
	if err != nil {
		l.DebugContext(ctx, "top-k rejected",
			"count", count,
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "top-k completed",
			"count", count,
			"k", k,
			"results", returned,
		)
	}
}
