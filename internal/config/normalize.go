package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOrganize()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOrganize() {
	c.Organize.TimeAttribute = strings.ToLower(strings.TrimSpace(c.Organize.TimeAttribute))
	if c.Organize.TimeAttribute == "" {
		c.Organize.TimeAttribute = defaultTimeAttribute
	}
	if c.Organize.SmallMaxMB == 0 {
		c.Organize.SmallMaxMB = defaultSmallMaxMB
	}
	if c.Organize.MediumMaxMB == 0 {
		c.Organize.MediumMaxMB = defaultMediumMaxMB
	}
	if c.Organize.Workers == 0 {
		c.Organize.Workers = defaultWorkers
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
