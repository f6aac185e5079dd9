package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pigeonhole/internal/config"
	"pigeonhole/internal/logging"
	"pigeonhole/internal/organizer"
	"pigeonhole/internal/preflight"
	"pigeonhole/internal/report"
	"pigeonhole/internal/runlock"
	"pigeonhole/internal/snapshot"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var timeFlag string
	var smallFlag int64
	var mediumFlag int64
	var workersFlag int
	var dryRun bool
	var verbose bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "organize [flags] <source_dir>",
		Short: "Move every file under a directory into extension/date/size buckets",
		Long: `Organize walks the source directory, snapshots every regular file, and
moves each one into <extension>/<YYYY>/<MM>/<DD>/<small|medium|large>
beneath the same root. Identical files already at their target are left
in place; differing files get a _N suffix instead of being overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			run := *cfg
			if cmd.Flags().Changed("time") {
				run.Organize.TimeAttribute = timeFlag
			}
			if cmd.Flags().Changed("small") {
				run.Organize.SmallMaxMB = smallFlag
			}
			if cmd.Flags().Changed("medium") {
				run.Organize.MediumMaxMB = mediumFlag
			}
			if cmd.Flags().Changed("workers") {
				run.Organize.Workers = workersFlag
			}
			if verbose {
				run.Logging.Level = "debug"
			}
			if err := run.Validate(); err != nil {
				return err
			}

			return runOrganize(cmd, &run, args[0], dryRun, jsonOut)
		},
	}

	cmd.Flags().StringVarP(&timeFlag, "time", "t", "creation", "Time attribute to classify by (creation, modification, access)")
	cmd.Flags().Int64Var(&smallFlag, "small", 1, "Small/medium boundary in MB")
	cmd.Flags().Int64Var(&mediumFlag, "medium", 10, "Medium/large boundary in MB")
	cmd.Flags().IntVar(&workersFlag, "workers", 1, "Relocation worker count")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Decide everything, move nothing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Narrate each decision")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run report as JSON")

	return cmd
}

func runOrganize(cmd *cobra.Command, cfg *config.Config, sourceArg string, dryRun, jsonOut bool) error {
	source, err := config.ExpandPath(sourceArg)
	if err != nil {
		return err
	}
	if err := preflight.CheckSourceDir(source); err != nil {
		return err
	}

	attribute, err := cfg.TimeAttribute()
	if err != nil {
		return err
	}

	rep := report.New(source, attribute, dryRun)

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = logger.With(logging.String(logging.FieldRunID, rep.RunID))

	lock := runlock.New(cfg.Paths.LogDir, source)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("starting run",
		logging.String("source", source),
		logging.String("time_attribute", attribute.String()),
		logging.Bool("dry_run", dryRun),
		logging.Int("workers", cfg.Organize.Workers))

	files, err := snapshot.Collect(source, logger)
	if err != nil {
		return err
	}
	logger.Info("snapshot complete", logging.Int("files", len(files)))

	eng := organizer.New(organizer.Options{
		Attribute:  attribute,
		Thresholds: cfg.Thresholds(),
		Workers:    cfg.Organize.Workers,
		DryRun:     dryRun,
	}, logger)

	outcomes, runErr := eng.Run(signalCtx, source, files)
	rep.Finish(outcomes)

	out := cmd.OutOrStdout()
	if jsonOut {
		if err := rep.WriteJSON(out); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, rep.Render(shouldColorize(out)))
		for _, failure := range rep.Failures() {
			fmt.Fprintf(out, "failed: %s (%s)\n", failure.Source, failure.Reason)
		}
	}

	// Per-file failures keep exit code 0; only cancellation propagates.
	return runErr
}
