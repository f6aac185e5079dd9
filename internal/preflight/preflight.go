package preflight

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Sentinel errors for the fatal-precondition checks. The CLI matches on
// these to pick its exit message.
var (
	// ErrMissing means the source path does not exist.
	ErrMissing = errors.New("source does not exist")
	// ErrNotDirectory means the source path exists but is not a directory.
	ErrNotDirectory = errors.New("source is not a directory")
	// ErrInaccessible means the source directory cannot be read, written,
	// or searched by the current user.
	ErrInaccessible = errors.New("source directory is not accessible")
)

// CheckSourceDir verifies that path exists, is a directory, and is
// readable, writable, and searchable. A failure here aborts the run
// before any file is touched.
func CheckSourceDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInaccessible, path, err)
	}
	return nil
}
