package rgbkmeans

import (
	"log/slog"
	"runtime"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	maxConcurrency   int
	memoryLimit      int64
	runsPerSecond    float64
	burst            int
}

func defaultOptions() options {
	return options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		maxConcurrency:   runtime.GOMAXPROCS(0),
	}
}

// Option configures a Clusterer.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &rgbkmeans.BasicMetricsCollector{}
//	c := rgbkmeans.New(rgbkmeans.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.RunCount, stats.RunAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs and batches.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := rgbkmeans.NewJSONLogger(slog.LevelInfo)
//	c := rgbkmeans.New(rgbkmeans.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMaxConcurrency bounds how many batch jobs run at once.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.maxConcurrency = n
	}
}

// WithMemoryLimit bounds the estimated working memory of concurrently
// running batch jobs. A job whose estimate exceeds the whole limit fails.
// 0 disables the limit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = max(bytes, 0)
	}
}

// WithRunRate limits how fast batch jobs may start. perSecond <= 0 disables
// the limit. burst is the number of jobs that may start back to back.
func WithRunRate(perSecond float64, burst int) Option {
	return func(o *options) {
		o.runsPerSecond = max(perSecond, 0)
		o.burst = burst
	}
}
