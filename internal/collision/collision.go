package collision

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pigeonhole/internal/fileutil"
	"pigeonhole/internal/layout"
)

// Decision classifies how a candidate target path may be used.
type Decision string

const (
	// TargetFree means nothing occupies the candidate path.
	TargetFree Decision = "target_free"
	// AlreadyInPlace means source and candidate are the same path; the
	// file is filed correctly and no I/O is needed.
	AlreadyInPlace Decision = "already_in_place"
	// IdenticalContent means a byte-identical file already occupies the
	// candidate path.
	IdenticalContent Decision = "identical_content"
	// RenamedTarget means the candidate was occupied by different content
	// and FinalTarget carries a disambiguated name instead.
	RenamedTarget Decision = "renamed_target"
)

// Resolution is the outcome of resolving one candidate target.
type Resolution struct {
	Decision    Decision
	FinalTarget string
}

const maxSuffixAttempts = 10000

// Resolve decides where source may land given its computed candidate
// target. Content comparison runs only when a different file occupies the
// candidate; comparison and stat failures surface as errors for the
// caller to record against the file.
func Resolve(source, candidate string) (Resolution, error) {
	if filepath.Clean(source) == filepath.Clean(candidate) {
		return Resolution{Decision: AlreadyInPlace, FinalTarget: candidate}, nil
	}

	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Resolution{Decision: TargetFree, FinalTarget: candidate}, nil
		}
		return Resolution{}, fmt.Errorf("stat target %s: %w", candidate, err)
	}

	same, err := fileutil.SameContents(source, candidate)
	if err != nil {
		return Resolution{}, fmt.Errorf("compare %s with %s: %w", source, candidate, err)
	}
	if same {
		return Resolution{Decision: IdenticalContent, FinalTarget: candidate}, nil
	}

	target, err := nextFreePath(candidate)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Decision: RenamedTarget, FinalTarget: target}, nil
}

// nextFreePath appends _N to the candidate's stem until an unused name is
// found, keeping the extension in place.
func nextFreePath(candidate string) (string, error) {
	dir := filepath.Dir(candidate)
	stem, ext := layout.SplitStem(filepath.Base(candidate))
	for attempt := 1; attempt <= maxSuffixAttempts; attempt++ {
		next := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, attempt, ext))
		if _, err := os.Stat(next); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return next, nil
			}
			return "", fmt.Errorf("stat candidate %s: %w", next, err)
		}
	}
	return "", fmt.Errorf("exhausted disambiguation suffixes for %s", candidate)
}
