package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "LVCOLOR_"

// FromEnv reads Defaults overridden by LVCOLOR_* variables, e.g.
// LVCOLOR_MODE, LVCOLOR_COLOR_BUDGET, LVCOLOR_GRAPH_VERTICES,
// LVCOLOR_TRANSPORT_ADDRESS. Unparsable numbers are reported, not ignored.
func FromEnv() (*Config, error) {
	cfg := Defaults()
	e := &envReader{}

	cfg.Mode = e.getEnv("MODE", cfg.Mode)
	cfg.Workers = e.getEnvInt("WORKERS", cfg.Workers)
	cfg.ColorBudget = e.getEnvInt("COLOR_BUDGET", cfg.ColorBudget)

	cfg.Graph.Kind = e.getEnv("GRAPH_KIND", cfg.Graph.Kind)
	cfg.Graph.Vertices = e.getEnvInt("GRAPH_VERTICES", cfg.Graph.Vertices)
	cfg.Graph.Edges = e.getEnvInt("GRAPH_EDGES", cfg.Graph.Edges)
	cfg.Graph.Probability = e.getEnvFloat("GRAPH_PROBABILITY", cfg.Graph.Probability)
	cfg.Graph.Degree = e.getEnvInt("GRAPH_DEGREE", cfg.Graph.Degree)
	cfg.Graph.Rows = e.getEnvInt("GRAPH_ROWS", cfg.Graph.Rows)
	cfg.Graph.Cols = e.getEnvInt("GRAPH_COLS", cfg.Graph.Cols)
	cfg.Graph.Seed = int64(e.getEnvInt("GRAPH_SEED", int(cfg.Graph.Seed)))
	cfg.Graph.File = e.getEnv("GRAPH_FILE", cfg.Graph.File)

	cfg.Transport.Rank = e.getEnvInt("TRANSPORT_RANK", cfg.Transport.Rank)
	cfg.Transport.Size = e.getEnvInt("TRANSPORT_SIZE", cfg.Transport.Size)
	cfg.Transport.Address = e.getEnv("TRANSPORT_ADDRESS", cfg.Transport.Address)

	cfg.Log.Level = e.getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = e.getEnv("LOG_FORMAT", cfg.Log.Format)
	cfg.MetricsAddress = e.getEnv("METRICS_ADDRESS", cfg.MetricsAddress)
	cfg.Output = e.getEnv("OUTPUT", cfg.Output)
	cfg.Print = e.getEnvBool("PRINT", cfg.Print)

	if e.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, e.err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envReader records the first parse failure.
type envReader struct {
	err error
}

func (e *envReader) getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func (e *envReader) getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(EnvPrefix + key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		e.fail(key, err)
		return defaultValue
	}
	return n
}

func (e *envReader) getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(EnvPrefix + key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		e.fail(key, err)
		return defaultValue
	}
	return f
}

func (e *envReader) getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(EnvPrefix + key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		e.fail(key, err)
		return defaultValue
	}
	return b
}

func (e *envReader) fail(key string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
	}
}
