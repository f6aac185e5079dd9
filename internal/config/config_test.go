package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pigeonhole/internal/bucket"
	"pigeonhole/internal/config"
	"pigeonhole/internal/filetime"
)

func TestLoadWithoutFileUsesDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected no config file to exist")
	}
	wantPath := filepath.Join(tempHome, ".config", "pigeonhole", "config.toml")
	if resolved != wantPath {
		t.Fatalf("resolved path = %q, want %q", resolved, wantPath)
	}
	wantLogDir := filepath.Join(tempHome, ".local", "share", "pigeonhole", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("log dir = %q, want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if cfg.Organize.TimeAttribute != "creation" {
		t.Fatalf("time attribute = %q, want creation", cfg.Organize.TimeAttribute)
	}
	if cfg.Organize.SmallMaxMB != 1 || cfg.Organize.MediumMaxMB != 10 {
		t.Fatalf("thresholds = %d/%d, want 1/10", cfg.Organize.SmallMaxMB, cfg.Organize.MediumMaxMB)
	}
	if cfg.Organize.Workers != 1 {
		t.Fatalf("workers = %d, want 1", cfg.Organize.Workers)
	}
}

func TestLoadExplicitFileOverridesDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "pigeonhole.toml")
	content := `
[paths]
log_dir = "` + filepath.Join(tempDir, "logs") + `"

[organize]
time_attribute = "modification"
small_max_mb = 2
medium_max_mb = 20
workers = 4

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("resolved path = %q, want %q", resolved, configPath)
	}
	if cfg.Organize.TimeAttribute != "modification" {
		t.Fatalf("time attribute = %q, want modification", cfg.Organize.TimeAttribute)
	}
	if cfg.Organize.Workers != 4 {
		t.Fatalf("workers = %d, want 4", cfg.Organize.Workers)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging = %s/%s, want debug/json", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestValidateRejectsIllOrderedThresholds(t *testing.T) {
	cfg := config.Default()
	cfg.Organize.SmallMaxMB = 10
	cfg.Organize.MediumMaxMB = 10
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for small_max_mb >= medium_max_mb")
	}
	if !strings.Contains(err.Error(), "small_max_mb") {
		t.Fatalf("error %q does not name the offending field", err)
	}
}

func TestValidateRejectsUnknownAttribute(t *testing.T) {
	cfg := config.Default()
	cfg.Organize.TimeAttribute = "birthday"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown time attribute")
	}
}

func TestValidateRejectsUnknownLogSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}

	cfg = config.Default()
	cfg.Logging.Level = "trace"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown log level")
	}
}

func TestValidateRejectsZeroWorkers(t *testing.T) {
	cfg := config.Default()
	cfg.Organize.Workers = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for negative worker count")
	}
}

func TestThresholdsConvertMegabytes(t *testing.T) {
	cfg := config.Default()
	cfg.Organize.SmallMaxMB = 2
	cfg.Organize.MediumMaxMB = 5
	want := bucket.Thresholds{SmallMax: 2 << 20, MediumMax: 5 << 20}
	if got := cfg.Thresholds(); got != want {
		t.Fatalf("Thresholds() = %+v, want %+v", got, want)
	}
}

func TestTimeAttributeParsesConfiguredValue(t *testing.T) {
	cfg := config.Default()
	cfg.Organize.TimeAttribute = "access"
	attr, err := cfg.TimeAttribute()
	if err != nil {
		t.Fatalf("TimeAttribute: %v", err)
	}
	if attr != filetime.Access {
		t.Fatalf("attribute = %q, want access", attr)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to be found")
	}
	defaults := config.Default()
	if cfg.Organize != defaults.Organize {
		t.Fatalf("sample organize section %+v differs from defaults %+v", cfg.Organize, defaults.Organize)
	}
	if cfg.Logging != defaults.Logging {
		t.Fatalf("sample logging section %+v differs from defaults %+v", cfg.Logging, defaults.Logging)
	}
}

func TestExpandPathResolvesTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/trees/photos")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if want := filepath.Join(tempHome, "trees", "photos"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}
