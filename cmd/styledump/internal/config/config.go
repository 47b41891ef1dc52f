// Package config loads the optional styledump.yaml tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the optional styledump.yaml configuration.
type Config struct {
	Output OutputConfig `yaml:"output"`
}

// OutputConfig contains attribute-table formatting preferences.
type OutputConfig struct {
	// ShowRanges toggles the range column. Defaults to true.
	ShowRanges *bool `yaml:"showRanges,omitempty"`
	// HexColors formats colors as 0xAARRGGBB instead of normalized
	// components. Defaults to true.
	HexColors *bool `yaml:"hexColors,omitempty"`
}

// Resolved contains resolved configuration values with defaults applied.
type Resolved struct {
	ShowRanges bool
	HexColors  bool
}

// LoadOptional reads styledump.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "styledump.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read styledump.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styledump.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads styledump.yaml (if present) and applies defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	resolved := &Resolved{ShowRanges: true, HexColors: true}
	if cfg.Output.ShowRanges != nil {
		resolved.ShowRanges = *cfg.Output.ShowRanges
	}
	if cfg.Output.HexColors != nil {
		resolved.HexColors = *cfg.Output.HexColors
	}
	return resolved, nil
}
