package organizer

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"pigeonhole/internal/bucket"
	"pigeonhole/internal/collision"
	"pigeonhole/internal/fileutil"
	"pigeonhole/internal/layout"
	"pigeonhole/internal/logging"
)

// relocate runs the full state machine for one file. Every error path
// terminates in an Outcome; nothing propagates to the caller.
func (o *Organizer) relocate(root, path string) Outcome {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			o.logger.Warn("file vanished since snapshot", logging.String("path", path))
			return Outcome{Source: path, Status: StatusSkippedMissing, Reason: "vanished since snapshot"}
		}
		o.logger.Warn("stat failed", logging.String("path", path), logging.Error(err))
		return Outcome{Source: path, Status: StatusFailed, Reason: "stat: " + err.Error()}
	}

	resolved := o.resolver.Resolve(path, o.opts.Attribute)
	if resolved.Degraded() {
		o.logger.Warn("timestamp attribute degraded",
			logging.String("path", path),
			logging.String("requested", o.opts.Attribute.String()),
			logging.String("used", string(resolved.Source)),
			logging.String("note", resolved.Note))
	}

	category := bucket.Categorize(info.Size(), o.opts.Thresholds)
	name := filepath.Base(path)
	spec := layout.NewTargetSpec(layout.Extension(name), resolved.Time, category)
	targetDir := filepath.Join(root, spec.RelativeDir())
	candidate := filepath.Join(targetDir, name)

	outcome := Outcome{
		Source:    path,
		Status:    StatusMoved,
		Size:      info.Size(),
		Timestamp: resolved.Time,
		Category:  category,
		Resolved:  resolved,
	}

	unlock := o.locks.acquire(targetDir)
	defer unlock()

	if err := o.ensureDir(targetDir); err != nil {
		o.logger.Warn("create target directory failed",
			logging.String("dir", targetDir), logging.Error(err))
		outcome.Status = StatusFailed
		outcome.Reason = "create directory: " + err.Error()
		return outcome
	}

	resolution, err := collision.Resolve(path, candidate)
	if err != nil {
		o.logger.Warn("collision resolution failed",
			logging.String("path", path), logging.Error(err))
		outcome.Status = StatusFailed
		outcome.Reason = "resolve collision: " + err.Error()
		return outcome
	}

	switch resolution.Decision {
	case collision.AlreadyInPlace:
		o.logger.Debug("already in place", logging.String("path", path))
		outcome.Status = StatusSkippedAlreadyCorrect
		outcome.Target = candidate
		return outcome
	case collision.IdenticalContent:
		o.logger.Info("identical file already filed; leaving source in place",
			logging.String("path", path),
			logging.String("target", resolution.FinalTarget))
		outcome.Status = StatusSkippedIdentical
		outcome.Target = resolution.FinalTarget
		return outcome
	}

	outcome.Target = resolution.FinalTarget
	if o.opts.DryRun {
		o.logger.Info("would move",
			logging.String("path", path),
			logging.String("target", resolution.FinalTarget))
		return outcome
	}

	if err := o.commit(path, resolution.FinalTarget); err != nil {
		o.logger.Warn("move failed",
			logging.String("path", path),
			logging.String("target", resolution.FinalTarget),
			logging.Error(err))
		outcome.Status = StatusFailed
		outcome.Reason = "move: " + err.Error()
		return outcome
	}

	o.logger.Info("moved",
		logging.String("path", path),
		logging.String("target", resolution.FinalTarget),
		logging.String("category", category.String()))
	return outcome
}

// ensureDir creates the bucket directory if absent. Under dry-run the
// intention is logged and the filesystem stays untouched.
func (o *Organizer) ensureDir(dir string) error {
	if o.opts.DryRun {
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			o.logger.Info("would create directory", logging.String("dir", dir))
		}
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// commit renames source to target. Renames across filesystem boundaries
// fail with EXDEV; those fall back to copy-then-remove preserving the
// file mode.
func (o *Organizer) commit(source, target string) error {
	err := os.Rename(source, target)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return err
	}
	if copyErr := fileutil.CopyFile(source, target); copyErr != nil {
		return copyErr
	}
	if removeErr := os.Remove(source); removeErr != nil {
		o.logger.Warn("failed to remove source after cross-device copy",
			logging.String("path", source), logging.Error(removeErr))
	}
	return nil
}
