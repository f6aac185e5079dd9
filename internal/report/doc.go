// Package report turns a run's outcomes into something a human or a
// script can consume: a summary table for terminals and an indented JSON
// document for pipelines. Each report is stamped with a unique run ID.
package report
