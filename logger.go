package geocluster

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with geocluster-specific context.
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

// WithAlgorithm adds an algorithm name field to the logger.
func (l *Logger) WithAlgorithm(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", name),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithRows adds a row count field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows),
	}
}

// LogLoad logs a table load operation.
func (l *Logger) LogLoad(ctx context.Context, name string, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "table load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "table loaded",
			"name", name,
			"rows", rows,
		)
	}
}

// LogSearch logs a closest-pair search operation.
func (l *Logger) LogSearch(n int, distance float64, err error) {
	if err != nil {
		l.Error("closest pair search failed",
			"clusters", n,
			"error", err,
		)
	} else {
		l.Debug("closest pair search completed",
			"clusters", n,
			"distance", distance,
		)
	}
}

// LogReduce logs a clustering operation.
func (l *Logger) LogReduce(algorithm string, from, to int, err error) {
	if err != nil {
		l.Error("clustering failed",
			"algorithm", algorithm,
			"rows", from,
			"k", to,
			"error", err,
		)
	} else {
		l.Debug("clustering completed",
			"algorithm", algorithm,
			"rows", from,
			"k", to,
		)
	}
}

// LogDistortion logs a distortion computation.
func (l *Logger) LogDistortion(clusters int, value float64, err error) {
	if err != nil {
		l.Error("distortion computation failed",
			"clusters", clusters,
			"error", err,
		)
	} else {
		l.Debug("distortion computed",
			"clusters", clusters,
			"distortion", value,
		)
	}
}

// LogSweep logs a distortion sweep over a range of cluster counts.
func (l *Logger) LogSweep(minK, maxK, points int, err error) {
	if err != nil {
		l.Error("distortion sweep failed",
			"min_k", minK,
			"max_k", maxK,
			"error", err,
		)
	} else {
		l.Info("distortion sweep completed",
			"min_k", minK,
			"max_k", maxK,
			"points", points,
		)
	}
}

// LogReport logs a report resolution.
func (l *Logger) LogReport(clusters int, err error) {
	if err != nil {
		l.Error("report failed",
			"clusters", clusters,
			"error", err,
		)
	} else {
		l.Debug("report resolved",
			"clusters", clusters,
		)
	}
}
