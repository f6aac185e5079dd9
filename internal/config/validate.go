package config

import (
	"fmt"

	"pigeonhole/internal/filetime"
)

// Validate ensures the configuration is usable. Ill-ordered size
// thresholds are rejected here so the classifier itself can stay a total,
// unchecked function.
func (c *Config) Validate() error {
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if _, err := filetime.ParseAttribute(c.Organize.TimeAttribute); err != nil {
		return fmt.Errorf("organize.time_attribute: %w", err)
	}
	if c.Organize.SmallMaxMB <= 0 {
		return fmt.Errorf("organize.small_max_mb must be positive, got %d", c.Organize.SmallMaxMB)
	}
	if c.Organize.MediumMaxMB <= 0 {
		return fmt.Errorf("organize.medium_max_mb must be positive, got %d", c.Organize.MediumMaxMB)
	}
	if c.Organize.SmallMaxMB >= c.Organize.MediumMaxMB {
		return fmt.Errorf("organize.small_max_mb (%d) must be less than organize.medium_max_mb (%d)",
			c.Organize.SmallMaxMB, c.Organize.MediumMaxMB)
	}
	if c.Organize.Workers < 1 {
		return fmt.Errorf("organize.workers must be at least 1, got %d", c.Organize.Workers)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (expected debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}
