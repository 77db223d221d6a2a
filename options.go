package geocluster

import (
	"log/slog"

	"github.com/hupe1980/geocluster/closestpair"
	"github.com/hupe1980/geocluster/codec"
)

type options struct {
	codec   codec.Codec
	finder  *closestpair.Finder
	metrics MetricsCollector
	logger  *Logger
}

// Option configures GeoCluster constructor behavior.
type Option func(*options)

// WithCodec configures the codec used by EncodeReport.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithFinder configures the closest-pair finder used by hierarchical
// clustering and ClosestPair, e.g. to enable parallel search:
//
//	finder := closestpair.New(func(o *closestpair.Options) {
//	    o.Parallel = true
//	})
//	gc, _ := geocluster.New(tbl, geocluster.WithFinder(finder))
func WithFinder(f *closestpair.Finder) Option {
	return func(o *options) {
		o.finder = f
	}
}

// WithMetrics configures a metrics collector for monitoring operations.
//
// Example with BasicMetricsCollector:
//
//	metrics := &geocluster.BasicMetricsCollector{}
//	gc, _ := geocluster.New(tbl, geocluster.WithMetrics(metrics))
//	// ... use gc ...
//	stats := metrics.GetStats()
//	fmt.Printf("Reduces: %d, Avg latency: %dns\n", stats.ReduceCount, stats.ReduceAvgNanos)
func WithMetrics(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := geocluster.NewJSONLogger(slog.LevelInfo)
//	gc, _ := geocluster.New(tbl, geocluster.WithLogger(logger))
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
		codec:   nil,
		metrics: NoopMetricsCollector{},
		logger:  NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
