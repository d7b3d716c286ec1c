package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	defaultPath     = "configs/aoc.yaml"
	defaultInputDir = "input"
	defaultLogLevel = "info"
)

// Config describes which days to run and where their inputs live.
type Config struct {
	LogLevel   string            `yaml:"log_level"`
	InputDir   string            `yaml:"input_dir"`
	Days       map[int]DayConfig `yaml:"days"`
	CubeLimits CubeLimits        `yaml:"cube_limits"`
}

type DayConfig struct {
	Input   string `yaml:"input"`
	Enabled *bool  `yaml:"enabled"`
}

// CubeLimits is the bag content the cube game (day 2) is checked against.
type CubeLimits struct {
	Red   uint64 `yaml:"red"`
	Green uint64 `yaml:"green"`
	Blue  uint64 `yaml:"blue"`
}

var DefaultCubeLimits = CubeLimits{Red: 12, Green: 13, Blue: 14}

// Load reads the YAML config at path. An empty path falls back to
// AOC_CONFIG_PATH and then configs/aoc.yaml. A missing file is not an
// error; the defaults are used instead.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("AOC_CONFIG_PATH")
	}
	if path == "" {
		path = defaultPath
	}

	// Limits are seeded before decoding so keys present in the file, including
	// an explicit 0, override them and absent keys keep the default.
	cfg := Config{CubeLimits: DefaultCubeLimits}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.InputDir == "" {
		cfg.InputDir = defaultInputDir
	}
	if cfg.Days == nil {
		cfg.Days = make(map[int]DayConfig)
	}
}

func (c *Config) Validate() error {
	for day := range c.Days {
		if day < 1 || day > 25 {
			return fmt.Errorf("day %d out of range 1..25", day)
		}
	}
	return nil
}

// EnabledDays lists the configured days that are not switched off, in
// ascending order. It is empty when no day is configured.
func (c *Config) EnabledDays() []int {
	var days []int
	for day, dc := range c.Days {
		if dc.Enabled != nil && !*dc.Enabled {
			continue
		}
		days = append(days, day)
	}
	slices.Sort(days)
	return days
}

// InputPaths returns the explicit per-day input files.
func (c *Config) InputPaths() map[int]string {
	paths := make(map[int]string)
	for day, dc := range c.Days {
		if dc.Input != "" {
			paths[day] = dc.Input
		}
	}
	return paths
}
