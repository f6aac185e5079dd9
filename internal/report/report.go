package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"pigeonhole/internal/filetime"
	"pigeonhole/internal/organizer"
)

// timePrecision is the rounding applied to the displayed run duration.
const timePrecision = 10 * time.Millisecond

// Report aggregates one run's outcomes for presentation. It is consumed
// once and never persisted.
type Report struct {
	RunID      string              `json:"run_id"`
	Root       string              `json:"root"`
	Attribute  filetime.Attribute  `json:"time_attribute"`
	DryRun     bool                `json:"dry_run"`
	StartedAt  time.Time           `json:"started_at"`
	FinishedAt time.Time           `json:"finished_at"`
	Outcomes   []organizer.Outcome `json:"outcomes"`
}

// New starts a report for a run, stamping it with a fresh run ID.
func New(root string, attribute filetime.Attribute, dryRun bool) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Root:      root,
		Attribute: attribute,
		DryRun:    dryRun,
		StartedAt: time.Now(),
	}
}

// Finish records the outcomes and closes the run window.
func (r *Report) Finish(outcomes []organizer.Outcome) {
	r.Outcomes = outcomes
	r.FinishedAt = time.Now()
}

// Duration returns the run's wall-clock span.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Summary carries the per-status counts and byte totals of one run.
type Summary struct {
	Total                 int   `json:"total"`
	Moved                 int   `json:"moved"`
	SkippedIdentical      int   `json:"skipped_identical"`
	SkippedAlreadyCorrect int   `json:"skipped_already_correct"`
	SkippedMissing        int   `json:"skipped_missing"`
	Failed                int   `json:"failed"`
	Degraded              int   `json:"degraded_timestamps"`
	MovedBytes            int64 `json:"moved_bytes"`
}

// Summarize folds the outcomes into counts and moved-byte totals.
func (r *Report) Summarize() Summary {
	s := Summary{Total: len(r.Outcomes)}
	for _, out := range r.Outcomes {
		switch out.Status {
		case organizer.StatusMoved:
			s.Moved++
			s.MovedBytes += out.Size
		case organizer.StatusSkippedIdentical:
			s.SkippedIdentical++
		case organizer.StatusSkippedAlreadyCorrect:
			s.SkippedAlreadyCorrect++
		case organizer.StatusSkippedMissing:
			s.SkippedMissing++
		case organizer.StatusFailed:
			s.Failed++
		}
		if out.Resolved.Degraded() {
			s.Degraded++
		}
	}
	return s
}

// Failures returns the outcomes that ended in failure, for per-file
// reporting after the summary.
func (r *Report) Failures() []organizer.Outcome {
	var failed []organizer.Outcome
	for _, out := range r.Outcomes {
		if out.Status == organizer.StatusFailed {
			failed = append(failed, out)
		}
	}
	return failed
}

// WriteJSON encodes the full report, including the per-file outcome list,
// as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
