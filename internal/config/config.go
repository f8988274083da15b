// Package config provides configuration loading for plotarea. It handles
// YAML config files and supplies default values when no file is present.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/plotmetric/plotarea/internal/classify"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Pipeline parameters
	Pipeline struct {
		// Slack is the crop padding around the marker bounding box, in pixels.
		Slack int `yaml:"slack"`

		// Jump is the scanline row stride; 1 processes every row.
		Jump int `yaml:"jump"`
	} `yaml:"pipeline"`

	// Thresholds are the channel-band rules for the three color classes.
	// Every scalar bound can be overridden individually.
	Thresholds classify.Thresholds `yaml:"thresholds"`

	// Output parameters
	Output struct {
		// OverlayDir, when non-empty, is the directory diagnostic overlay
		// images are written to, one per processed map.
		OverlayDir string `yaml:"overlayDir"`

		// Verbose controls the level of logging output.
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Pipeline.Slack = 5
	cfg.Pipeline.Jump = 1
	cfg.Thresholds = classify.DefaultThresholds()
	cfg.Output.OverlayDir = ""
	cfg.Output.Verbose = false
	return cfg
}

// LoadConfig loads configuration from a YAML file. If the file doesn't
// exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
