package permugo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with permugo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLen adds a dataset length field to the logger.
func (l *Logger) WithLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("len", n),
	}
}

// WithWorkers adds a worker count field to the logger.
func (l *Logger) WithWorkers(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", n),
	}
}

// WithDatasets adds a dataset count field to the logger.
func (l *Logger) WithDatasets(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("datasets", n),
	}
}

// LogApply logs an apply operation.
func (l *Logger) LogApply(ctx context.Context, n int, parallel bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "apply failed",
			"len", n,
			"parallel", parallel,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "apply completed",
			"len", n,
			"parallel", parallel,
		)
	}
}

// LogApplyAll logs a multi-dataset apply operation.
func (l *Logger) LogApplyAll(ctx context.Context, datasets int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "apply all failed",
			"datasets", datasets,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "apply all completed",
			"datasets", datasets,
		)
	}
}
