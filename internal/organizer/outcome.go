package organizer

import (
	"time"

	"pigeonhole/internal/bucket"
	"pigeonhole/internal/filetime"
)

// Status classifies how one file's relocation ended.
type Status string

const (
	// StatusMoved means the file was moved to Target (or would be, under
	// dry-run).
	StatusMoved Status = "moved"
	// StatusSkippedIdentical means a byte-identical file already occupies
	// the target; the source was left in place.
	StatusSkippedIdentical Status = "skipped_identical"
	// StatusSkippedAlreadyCorrect means the file already sits at its
	// computed target.
	StatusSkippedAlreadyCorrect Status = "skipped_already_correct"
	// StatusSkippedMissing means the file vanished between snapshot and
	// relocation.
	StatusSkippedMissing Status = "skipped_missing"
	// StatusFailed means an I/O failure stopped this file; the batch
	// continued without it.
	StatusFailed Status = "failed"
)

func (s Status) String() string { return string(s) }

// Outcome records the terminal state of one file's relocation. Outcomes
// exist only for reporting; nothing is persisted across runs.
type Outcome struct {
	Source    string              `json:"source"`
	Target    string              `json:"target,omitempty"`
	Status    Status              `json:"status"`
	Size      int64               `json:"size,omitempty"`
	Timestamp time.Time           `json:"timestamp,omitempty"`
	Category  bucket.Category     `json:"category,omitempty"`
	Resolved  filetime.Resolution `json:"-"`
	Reason    string              `json:"reason,omitempty"`
}

// Moved reports whether the outcome represents a committed (or planned)
// move.
func (out Outcome) Moved() bool {
	return out.Status == StatusMoved
}
