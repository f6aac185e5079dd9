// Package logging assembles the structured slog loggers used across
// pigeonhole.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides attribute helpers plus a no-op logger for tests
// and wiring code that cannot fail. Console output prefixes each line with
// the component that emitted it; run-scoped fields such as the run ID are
// attached once with Logger.With and flow to every line.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
