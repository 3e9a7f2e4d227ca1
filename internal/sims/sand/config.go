package sand

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config controls the sand world.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	// Iteration is the number of samples per tick; zero selects
	// DefaultIteration for the grid size.
	Iteration     int  `yaml:"iteration"`
	DiagonalSlide bool `yaml:"diagonal_slide"`

	// CellSize is the world-unit edge length of a cell used when tracing.
	CellSize float64 `yaml:"cell_size"`

	Scene Scene `yaml:"scene"`
}

// DefaultConfig returns the built-in configuration from the embedded
// defaults.yaml. Each call returns a fresh copy.
func DefaultConfig() Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic(fmt.Sprintf("sand: parsing embedded defaults: %v", err))
	}
	return c
}

// Iterations resolves the effective per-tick sample count.
func (c Config) Iterations() int {
	if c.Iteration > 0 {
		return c.Iteration
	}
	return DefaultIteration(c.Width, c.Height)
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().WithOverrides(cfg)
}

// WithOverrides returns c with the recognised keys of cfg applied. Values
// that do not parse, or are out of range, are ignored.
func (c Config) WithOverrides(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["iteration"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Iteration = parsed
		}
	}
	if v, ok := cfg["diagonal_slide"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.DiagonalSlide = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML config file over the embedded defaults. Keys
// missing from the file keep their default values; scene stamp and fill lists given in
// the file replace the default lists.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks dimensions and scene references.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Iteration < 0 {
		return fmt.Errorf("iteration %d must not be negative", c.Iteration)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size %v must be positive", c.CellSize)
	}
	return c.Scene.Validate()
}
