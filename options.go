package permugo

import (
	"log/slog"

	"github.com/hupe1980/permugo/resource"
)

type options struct {
	logger            *Logger
	metricsCollector  MetricsCollector
	controller        *resource.Controller
	numWorkers        int
	parallelThreshold int
	applyAllLimit     int
}

// Option configures Permuter behavior.
//
// Options exist to avoid exploding the API surface with constructor
// variants; the zero configuration (no logging, no metrics, no limits,
// host parallelism) is always valid.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := permugo.NewJSONLogger(slog.LevelInfo)
//	p := permugo.New[int](ix, permugo.WithLogger(logger))
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

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &permugo.BasicMetricsCollector{}
//	p := permugo.New[int](ix, permugo.WithMetricsCollector(metrics))
//	// ... use p ...
//	stats := metrics.GetStats()
//	fmt.Printf("Applies: %d, Avg latency: %dns\n", stats.ApplyCount, stats.ApplyAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithNumWorkers configures the worker count for the parallel path.
//
// If n <= 0 (the default), the host's available parallelism
// (runtime.GOMAXPROCS) is used. A value of 1 disables the parallel path
// entirely.
func WithNumWorkers(n int) Option {
	return func(o *options) {
		o.numWorkers = n
	}
}

// WithParallelThreshold overrides the dataset length at which applies switch
// from the sequential to the parallel algorithm. If n <= 0,
// DefaultParallelThreshold is used.
//
// The default is right for most workloads; lowering it only pays off for
// element types whose moves are unusually expensive.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultParallelThreshold
		}
		o.parallelThreshold = n
	}
}

// WithResourceController attaches a resource.Controller that gates applies:
// transient buffer memory is reserved before any mutation, apply slots bound
// concurrency, and the move throttle paces large relocations.
// Pass nil to disable resource gating.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithApplyAllLimit bounds how many datasets ApplyAll reorders concurrently.
// If n <= 0, the worker count is used.
func WithApplyAllLimit(n int) Option {
	return func(o *options) {
		o.applyAllLimit = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:            NoopLogger(),
		metricsCollector:  NoopMetricsCollector{},
		parallelThreshold: DefaultParallelThreshold,
	}

	for _, fn := range optFns {
		fn(&o)
	}

	return o
}
