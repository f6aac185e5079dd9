package organizer

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"pigeonhole/internal/bucket"
	"pigeonhole/internal/filetime"
	"pigeonhole/internal/logging"
)

// Options carries the per-run classification settings. They are fixed at
// construction and never change while a run is in flight.
type Options struct {
	Attribute  filetime.Attribute
	Thresholds bucket.Thresholds
	Workers    int
	DryRun     bool
}

// Organizer relocates the files of one snapshot into their bucket
// directories.
type Organizer struct {
	opts     Options
	resolver *filetime.Resolver
	logger   *slog.Logger
	locks    dirLocks
}

// New constructs an organizer backed by the platform timestamp probes.
func New(opts Options, logger *slog.Logger) *Organizer {
	return NewWithResolver(opts, filetime.NewResolver(), logger)
}

// NewWithResolver allows injecting the timestamp resolver (used in tests
// to simulate capability gaps).
func NewWithResolver(opts Options, resolver *filetime.Resolver, logger *slog.Logger) *Organizer {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Attribute == "" {
		opts.Attribute = filetime.Creation
	}
	if opts.Thresholds == (bucket.Thresholds{}) {
		opts.Thresholds = bucket.DefaultThresholds()
	}
	if resolver == nil {
		resolver = filetime.NewResolver()
	}
	return &Organizer{
		opts:     opts,
		resolver: resolver,
		logger:   logging.NewComponentLogger(logger, "organizer"),
	}
}

// Run relocates every file of the snapshot beneath root and returns one
// outcome per file, sorted by source path. Cancellation stops scheduling
// between files and returns the outcomes accumulated so far along with
// ctx.Err(); a rename already started is never interrupted.
func (o *Organizer) Run(ctx context.Context, root string, files []string) ([]Outcome, error) {
	jobs := make(chan string)
	results := make(chan Outcome, len(files))

	var wg sync.WaitGroup
	wg.Add(o.opts.Workers)
	for i := 0; i < o.opts.Workers; i++ {
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- o.relocate(root, path)
			}
		}()
	}

	canceled := false
dispatch:
	for _, path := range files {
		if ctx.Err() != nil {
			canceled = true
			break
		}
		select {
		case <-ctx.Done():
			canceled = true
			break dispatch
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	outcomes := make([]Outcome, 0, len(files))
	for outcome := range results {
		outcomes = append(outcomes, outcome)
	}
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Source < outcomes[j].Source
	})

	if canceled {
		return outcomes, ctx.Err()
	}
	return outcomes, nil
}
