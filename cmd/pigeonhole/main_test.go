package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pigeonhole/internal/testsupport"
)

var fixedTime = time.Date(2023, time.March, 5, 12, 0, 0, 0, time.Local)

// runCLI executes the command tree in-process and captures its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeTestConfig writes a config file whose log directory lives under a
// per-test temp dir, so tests never touch the real home directory.
func writeTestConfig(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	content := `
[paths]
log_dir = "` + filepath.Join(base, "logs") + `"

[logging]
level = "error"
`
	testsupport.WriteFile(t, configPath, content)
	return configPath
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output does not contain %q:\n%s", want, output)
	}
}
