package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/geom/spatial"
)

// Config controls the circle field and the relaxation run.
type Config struct {
	// Circles is the number of circles to scatter.
	Circles int `yaml:"circles"`

	// MinRadius and MaxRadius bound the random circle radii.
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`

	// Spread is the side of the square the circles start in.
	Spread float64 `yaml:"spread"`

	// Padding is the quadtree pruning padding in world units.
	Padding float64 `yaml:"padding"`

	// Passes is the number of relaxation passes.
	Passes int `yaml:"passes"`

	// Seed makes runs reproducible.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns a config that produces a pleasantly crowded
// field.
func DefaultConfig() Config {
	return Config{
		Circles:   80,
		MinRadius: 4,
		MaxRadius: 16,
		Spread:    400,
		Padding:   spatial.DefaultPadding,
		Passes:    30,
		Seed:      1,
	}
}

// LoadConfig reads a YAML config file. Missing keys keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Circles <= 0 {
		return fmt.Errorf("circles must be positive, got %d", c.Circles)
	}
	if c.MinRadius <= 0 {
		return fmt.Errorf("min_radius must be positive, got %v", c.MinRadius)
	}
	if c.MaxRadius < c.MinRadius {
		return fmt.Errorf("max_radius %v is smaller than min_radius %v", c.MaxRadius, c.MinRadius)
	}
	if c.Spread <= 0 {
		return fmt.Errorf("spread must be positive, got %v", c.Spread)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %v", c.Padding)
	}
	if c.Passes <= 0 {
		return fmt.Errorf("passes must be positive, got %d", c.Passes)
	}
	return nil
}
