package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/hay-kot/colsize/internal/core/distribute"
	"github.com/hay-kot/colsize/internal/core/styles"
	"github.com/hay-kot/colsize/internal/core/validate"
)

// ValidateDeep performs comprehensive validation of the configuration
// including discovery patterns, theme names, and file accessibility. The
// configPath argument specifies the config file location to validate
// (empty string skips the config file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateWidths(),
		c.validatePatterns(),
		criterio.Run("theme", c.Theme, themeExists),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// validateWidths reports settings that are valid but cannot produce a
// useful layout.
func (c *Config) validateWidths() error {
	var errs criterio.FieldErrorsBuilder

	if c.Widths.CharWidth < 1 {
		errs = errs.Append("widths.char_width", fmt.Errorf("must be at least 1, got %d", c.Widths.CharWidth))
	}
	if c.Widths.Padding < 0 {
		errs = errs.Append("widths.padding", fmt.Errorf("cannot be negative, got %d", c.Widths.Padding))
	}
	if c.Widths.Behavior == distribute.BehaviorCustom {
		if err := validate.Width(c.Widths.Custom); err != nil {
			errs = errs.Append("widths.custom", err)
		}
	}

	return errs.ToError()
}

func (c *Config) validatePatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.Discovery.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("discovery.patterns[%d]", i), fmt.Errorf("invalid pattern %q", pattern))
		}
	}
	return errs.ToError()
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}
