package primepairs

import "log/slog"

type options struct {
	parallelism      int
	chunkSize        uint64
	numShards        int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Pipeline constructor behavior.
type Option func(*options)

// WithParallelism bounds the number of concurrent workers per stage.
// Values <= 0 fall back to runtime.GOMAXPROCS(0).
func WithParallelism(parallelism int) Option {
	return func(o *options) {
		o.parallelism = parallelism
	}
}

// WithChunkSize sets the number of candidates a single sieve task scans.
//
// Smaller chunks balance load better near the top of large ranges, where
// per-candidate trial division is more expensive; larger chunks cut
// scheduling overhead. Values of 0 fall back to the sieve default.
func WithChunkSize(chunkSize uint64) Option {
	return func(o *options) {
		o.chunkSize = chunkSize
	}
}

// WithNumShards sets the shard count of the triple set.
//
// Shards each carry their own lock, so more shards mean less insert
// contention during the pairing stage at the cost of a little memory.
// Values <= 0 fall back to the factor default.
func WithNumShards(numShards int) Option {
	return func(o *options) {
		o.numShards = numShards
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &primepairs.BasicMetricsCollector{}
//	pp := primepairs.New(primepairs.WithMetricsCollector(metrics))
//	// ... run pipelines ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := primepairs.NewJSONLogger(slog.LevelInfo)
//	pp := primepairs.New(primepairs.WithLogger(logger))
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

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
