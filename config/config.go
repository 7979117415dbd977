package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// maxFileSize caps the config file; anything larger is not a config file.
const maxFileSize = 1 << 20

// Config is the root configuration. Fields omitted from a file keep the
// values from Default.
type Config struct {
	// Barrier is the height that blocks basin expansion.
	Barrier int64 `yaml:"barrier"`
	// TopBasins is how many of the largest basins are multiplied.
	TopBasins int `yaml:"top_basins"`

	// Threshold is the cascade trigger level.
	Threshold int `yaml:"threshold"`
	// Steps is the number of cascade steps counted for part one.
	Steps int `yaml:"steps"`
	// SyncLimit bounds the search for the first synchronized step.
	SyncLimit int `yaml:"sync_limit"`

	// MinOverlap is the coverage that counts as an overlap.
	MinOverlap int `yaml:"min_overlap"`

	Render   Render `yaml:"render"`
	LogLevel string `yaml:"log_level"`
}

// Render holds the glyphs used to draw occupancy grids.
type Render struct {
	On  string `yaml:"on"`
	Off string `yaml:"off"`
}

// Default returns the configuration the puzzles are defined with.
func Default() *Config {
	return &Config{
		Barrier:    9,
		TopBasins:  3,
		Threshold:  9,
		Steps:      100,
		SyncLimit:  10000,
		MinOverlap: 2,
		Render:     Render{On: "#", Off: "."},
		LogLevel:   "info",
	}
}

// Load reads a YAML config file on top of Default and validates it.
// The path must end in .yaml or .yml and the file must be under 1MB.
func Load(path string) (*Config, error) {
	clean := filepath.Clean(path)
	if ext := filepath.Ext(clean); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}
	info, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	b, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML bytes on top of Default and validates the result.
func Parse(b []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field for a usable value.
func (c *Config) Validate() error {
	switch {
	case c.TopBasins < 1:
		return fmt.Errorf("%w: top_basins must be at least 1, got %d", ErrInvalidConfig, c.TopBasins)
	case c.Threshold < 0:
		return fmt.Errorf("%w: threshold must be non-negative, got %d", ErrInvalidConfig, c.Threshold)
	case c.Steps < 0:
		return fmt.Errorf("%w: steps must be non-negative, got %d", ErrInvalidConfig, c.Steps)
	case c.SyncLimit < 1:
		return fmt.Errorf("%w: sync_limit must be at least 1, got %d", ErrInvalidConfig, c.SyncLimit)
	case c.MinOverlap < 1:
		return fmt.Errorf("%w: min_overlap must be at least 1, got %d", ErrInvalidConfig, c.MinOverlap)
	case len([]rune(c.Render.On)) != 1 || len([]rune(c.Render.Off)) != 1:
		return fmt.Errorf("%w: render glyphs must be single characters, got %q/%q",
			ErrInvalidConfig, c.Render.On, c.Render.Off)
	}
	return nil
}

// Glyphs returns the render glyphs as runes. Call after Validate.
func (c *Config) Glyphs() (on, off rune) {
	return []rune(c.Render.On)[0], []rune(c.Render.Off)[0]
}
