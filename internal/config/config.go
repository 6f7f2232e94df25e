package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Population selection for a simulation run.
const (
	PopulationUnique = "unique" // one prototype per distinct behavior
	PopulationFull   = "full"   // all 32 genomes, redundant ones included
)

// Config holds simulation configuration.
type Config struct {
	Rounds     int     `yaml:"rounds"`      // rounds per pairing
	StopSize   int     `yaml:"stop_size"`   // stop eliminating at this population size
	WeightStep float64 `yaml:"weight_step"` // sweep grid increment
	Workers    int     `yaml:"workers"`     // parallel pairing rows
	Population string  `yaml:"population"`  // unique or full
	NoColor    bool    `yaml:"no_color"`    // disable ANSI color in reports
}

// Load returns the default configuration with environment variable
// overrides applied.
func Load() *Config {
	return &Config{
		Rounds:     envIntOrDefault("DILEMMA_ROUNDS", 200),
		StopSize:   envIntOrDefault("DILEMMA_STOP_SIZE", 4),
		WeightStep: 0.05,
		Workers:    envIntOrDefault("DILEMMA_WORKERS", 1),
		Population: envOrDefault("DILEMMA_POPULATION", PopulationUnique),
	}
}

// MergeFile overlays a YAML file onto the configuration. Fields absent
// from the file keep their current values.
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate reports configuration values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	if c.StopSize < 1 {
		return fmt.Errorf("stop size must be at least 1, got %d", c.StopSize)
	}
	if c.WeightStep <= 0 || c.WeightStep >= 1 {
		return fmt.Errorf("weight step must be inside (0, 1), got %v", c.WeightStep)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Population != PopulationUnique && c.Population != PopulationFull {
		return fmt.Errorf("population must be %q or %q, got %q", PopulationUnique, PopulationFull, c.Population)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
