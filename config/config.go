// Package config loads run configuration for the lvcolor CLI from YAML
// files or LVCOLOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcolor/logging"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Execution modes.
const (
	ModeShared           = "shared"
	ModeDistributed      = "distributed"
	ModeLocalDistributed = "local-distributed"
)

// Config is the full run configuration.
type Config struct {
	Mode           string    `yaml:"mode"`
	Workers        int       `yaml:"workers"`
	ColorBudget    int       `yaml:"color_budget"`
	Graph          Graph     `yaml:"graph"`
	Transport      Transport `yaml:"transport"`
	Log            Log       `yaml:"log"`
	MetricsAddress string    `yaml:"metrics_address,omitempty"`
	Output         string    `yaml:"output,omitempty"`
	Print          bool      `yaml:"print"`
}

// Graph selects the topology source.
type Graph struct {
	Kind        string  `yaml:"kind"`
	Vertices    int     `yaml:"vertices"`
	Edges       int     `yaml:"edges"`
	Probability float64 `yaml:"probability"`
	Degree      int     `yaml:"degree"`
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	Seed        int64   `yaml:"seed"`
	File        string  `yaml:"file,omitempty"`
}

// Transport configures distributed runs. Size counts every rank including
// the coordinator.
type Transport struct {
	Rank    int    `yaml:"rank"`
	Size    int    `yaml:"size"`
	Address string `yaml:"address"`
}

// Log configures the zerolog logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Defaults mirrors the classic lab harness: 5 vertices, 1 random edge,
// 20 colors and 10 workers.
func Defaults() Config {
	return Config{
		Mode:        ModeShared,
		Workers:     10,
		ColorBudget: 20,
		Graph: Graph{
			Kind:        KindRandomEdges,
			Vertices:    5,
			Edges:       1,
			Probability: 0.1,
			Degree:      3,
			Rows:        4,
			Cols:        4,
			Seed:        1,
		},
		Transport: Transport{
			Rank:    0,
			Size:    3,
			Address: "127.0.0.1:7946",
		},
		Log: Log{Level: "info", Format: logging.FormatText},
	}
}

// Load reads a YAML file over Defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// Validate reports every problem at once, joined and wrapped in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) { errs = append(errs, fmt.Errorf(format, args...)) }

	switch c.Mode {
	case ModeShared:
		if c.Workers < 1 {
			add("workers must be >= 1, got %d", c.Workers)
		}
	case ModeLocalDistributed:
		if c.Transport.Size < 2 {
			add("transport.size must be >= 2, got %d", c.Transport.Size)
		}
	case ModeDistributed:
		if c.Transport.Size < 2 {
			add("transport.size must be >= 2, got %d", c.Transport.Size)
		}
		if c.Transport.Rank < 0 || c.Transport.Rank >= c.Transport.Size {
			add("transport.rank must be in [0,%d), got %d", c.Transport.Size, c.Transport.Rank)
		}
		if c.Transport.Address == "" {
			add("transport.address is required in distributed mode")
		}
	default:
		add("mode must be %q, %q or %q, got %q", ModeShared, ModeDistributed, ModeLocalDistributed, c.Mode)
	}

	if c.ColorBudget < 1 {
		add("color_budget must be >= 1, got %d", c.ColorBudget)
	}
	if err := c.Graph.validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		add("log.format must be %q or %q, got %q", logging.FormatText, logging.FormatJSON, c.Log.Format)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
