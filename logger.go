package primepairs

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with pipeline-specific context.
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

// WithRange adds the inclusive range bounds to the logger.
func (l *Logger) WithRange(start, end uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("start", start, "end", end),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSieve logs a range collection operation.
func (l *Logger) LogSieve(ctx context.Context, start, end uint64, found int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sieve failed",
			"start", start,
			"end", end,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "sieve completed",
			"start", start,
			"end", end,
			"primes", found,
		)
	}
}

// LogFactorize logs a pair enumeration operation.
func (l *Logger) LogFactorize(ctx context.Context, primes, pairs int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "factorize failed",
			"primes", primes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "factorize completed",
			"primes", primes,
			"pairs", pairs,
		)
	}
}
