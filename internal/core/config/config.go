// Package config handles configuration loading and validation for colsize.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/colsize/internal/core/distribute"
	"github.com/hay-kot/colsize/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Widths    WidthsConfig    `yaml:"widths"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Files     FilesConfig     `yaml:"files"`
	Theme     string          `yaml:"theme"`
}

// WidthsConfig holds the numbers column width behaviors draw from.
type WidthsConfig struct {
	Min       int                 `yaml:"min"`        // lower bound in pixels
	Max       int                 `yaml:"max"`        // upper bound in pixels
	Custom    int                 `yaml:"custom"`     // width used by the custom behavior
	Behavior  distribute.Behavior `yaml:"behavior"`   // default behavior for `colsize apply`
	CharWidth int                 `yaml:"char_width"` // pixels per character for fit-content
	Padding   int                 `yaml:"padding"`    // pixels added per column for fit-content
}

// DiscoveryConfig controls how `colsize find` locates view files.
type DiscoveryConfig struct {
	Patterns []string `yaml:"patterns"` // doublestar patterns relative to the search root
}

// FilesConfig controls how documents are written back.
type FilesConfig struct {
	Backup bool `yaml:"backup"` // write <file>.bak before replacing a document
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Widths: WidthsConfig{
			Min:       100,
			Max:       300,
			Custom:    150,
			Behavior:  distribute.BehaviorMinWidth,
			CharWidth: 8,
			Padding:   24,
		},
		Discovery: DiscoveryConfig{
			Patterns: []string{"**/*.base"},
		},
		Files: FilesConfig{
			Backup: false,
		},
		Theme: styles.DefaultTheme,
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Widths.Behavior == "" {
		c.Widths.Behavior = defaults.Widths.Behavior
	}
	if c.Widths.CharWidth == 0 {
		c.Widths.CharWidth = defaults.Widths.CharWidth
	}
	if len(c.Discovery.Patterns) == 0 {
		c.Discovery.Patterns = defaults.Discovery.Patterns
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.Widths.Min < 0 || c.Widths.Max < 0 || c.Widths.Custom < 0 {
		return fmt.Errorf("widths cannot be negative")
	}

	if c.Widths.Max > 0 && c.Widths.Min > c.Widths.Max {
		return fmt.Errorf("widths.min (%d) cannot exceed widths.max (%d)", c.Widths.Min, c.Widths.Max)
	}

	if !c.Widths.Behavior.IsValid() {
		return fmt.Errorf("widths.behavior %q is invalid", c.Widths.Behavior)
	}

	return nil
}

// Params returns the distribution parameters described by the config.
// total is the width shared by the even behavior.
func (c *Config) Params(total int) distribute.Params {
	return distribute.Params{
		Min:    c.Widths.Min,
		Max:    c.Widths.Max,
		Custom: c.Widths.Custom,
		Total:  total,
		Metrics: distribute.Metrics{
			CharWidth: c.Widths.CharWidth,
			Padding:   c.Widths.Padding,
		},
	}
}
