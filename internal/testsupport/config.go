package testsupport

import (
	"path/filepath"
	"testing"

	"pigeonhole/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp log directory per
// test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithTimeAttribute overrides the time attribute on the test config.
func WithTimeAttribute(attribute string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.TimeAttribute = attribute
	}
}

// WithThresholdsMB overrides the size boundaries on the test config.
func WithThresholdsMB(smallMax, mediumMax int64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.SmallMaxMB = smallMax
		cfg.Organize.MediumMaxMB = mediumMax
	}
}

// WithWorkers overrides the relocation worker count on the test config.
func WithWorkers(workers int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.Workers = workers
	}
}
