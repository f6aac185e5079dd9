// Package organizer drives the per-file relocation state machine over a
// snapshot of the source tree.
//
// For each file it resolves the configured timestamp attribute, classifies
// the size, derives the extension/date/category bucket, ensures the bucket
// directory exists, resolves name collisions, and commits the move. Every
// per-file problem becomes a skip or failure outcome; nothing from a single
// file unwinds past this package, so one bad file never aborts the batch.
//
// Files are processed over a bounded worker pool. Directory creation,
// collision resolution, and the commit itself run under a per-target-
// directory mutex so concurrent workers cannot race on shared bucket
// state.
package organizer
