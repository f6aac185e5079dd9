package snapshot

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"pigeonhole/internal/logging"
)

// Collect walks root and returns every regular file beneath it, in the
// lexical order WalkDir produces. Symlinks and other non-regular entries
// are not collected and never followed. Unreadable entries below the root
// are logged as warnings and skipped; an unreadable root is an error.
func Collect(root string, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn("skipping unreadable entry",
				logging.String("path", path),
				logging.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}
