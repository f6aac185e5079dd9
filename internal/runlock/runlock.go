package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld means another pigeonhole process already holds the lock for the
// same source tree.
var ErrHeld = errors.New("another pigeonhole run is already reorganizing this tree")

// Lock is an advisory cross-process lock scoped to one source tree. The
// lock file lives in the log directory, never inside the tree being
// reorganized, so the walker never sees it.
type Lock struct {
	path  string
	flock *flock.Flock
}

// New creates a lock for the given source root. The root is folded into
// the lock file name so runs against different trees do not exclude each
// other.
func New(lockDir, sourceRoot string) *Lock {
	digest := sha256.Sum256([]byte(filepath.Clean(sourceRoot)))
	name := fmt.Sprintf("pigeonhole-%s.lock", hex.EncodeToString(digest[:8]))
	path := filepath.Join(lockDir, name)
	return &Lock{path: path, flock: flock.New(path)}
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Acquire takes the lock without blocking. A lock held elsewhere reports
// ErrHeld.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}
	ok, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w (lock file %s)", ErrHeld, l.path)
	}
	return nil
}

// Release drops the lock. Safe to call after a failed Acquire.
func (l *Lock) Release() error {
	return l.flock.Unlock()
}
