package primepairs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-derived pipeline settings. Zero values leave the
// corresponding option at its default.
type Config struct {
	Parallelism int    `env:"PRIMEPAIRS_PARALLELISM"`
	ChunkSize   uint64 `env:"PRIMEPAIRS_CHUNK_SIZE"`
	NumShards   int    `env:"PRIMEPAIRS_NUM_SHARDS"`
	LogLevel    string `env:"PRIMEPAIRS_LOG_LEVEL"`
}

// ConfigFromEnv loads configuration from environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Options translates the config into constructor options.
func (c Config) Options() []Option {
	var optFns []Option

	if c.Parallelism > 0 {
		optFns = append(optFns, WithParallelism(c.Parallelism))
	}
	if c.ChunkSize > 0 {
		optFns = append(optFns, WithChunkSize(c.ChunkSize))
	}
	if c.NumShards > 0 {
		optFns = append(optFns, WithNumShards(c.NumShards))
	}
	if c.LogLevel != "" {
		optFns = append(optFns, WithLogLevel(parseLogLevel(c.LogLevel)))
	}

	return optFns
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
