package rgbkmeans

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clustering-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithK adds a k (centroid count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithPixels adds a pixel count field to the logger.
func (l *Logger) WithPixels(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("pixels", n),
	}
}

// WithSeed adds a seed field to the logger.
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// WithJob adds a job name field to the logger.
func (l *Logger) WithJob(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("job", name),
	}
}

// LogRun logs a clustering run.
func (l *Logger) LogRun(ctx context.Context, pixels, k, iters, empty int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "run failed",
			"pixels", pixels,
			"k", k,
			"error", err,
		)
	case empty > 0:
		l.WarnContext(ctx, "run completed with empty clusters",
			"pixels", pixels,
			"k", k,
			"iterations", iters,
			"empty", empty,
		)
	default:
		l.DebugContext(ctx, "run completed",
			"pixels", pixels,
			"k", k,
			"iterations", iters,
		)
	}
}

// LogBatch logs a batch of clustering jobs.
func (l *Logger) LogBatch(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch completed",
			"count", count,
		)
	}
}
