package preflight_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pigeonhole/internal/preflight"
)

func TestCheckSourceDirAcceptsWritableDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := preflight.CheckSourceDir(dir); err != nil {
		t.Fatalf("CheckSourceDir(%s): %v", dir, err)
	}
}

func TestCheckSourceDirRejectsMissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	err := preflight.CheckSourceDir(missing)
	if !errors.Is(err, preflight.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}

func TestCheckSourceDirRejectsRegularFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("data"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	err := preflight.CheckSourceDir(file)
	if !errors.Is(err, preflight.ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
}

func TestCheckSourceDirRejectsInaccessibleDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Chmod(dir, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err := preflight.CheckSourceDir(dir)
	if !errors.Is(err, preflight.ErrInaccessible) {
		t.Fatalf("expected ErrInaccessible, got %v", err)
	}
}
