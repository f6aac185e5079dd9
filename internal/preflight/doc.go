// Package preflight verifies the fatal preconditions of a run before any
// file is touched: the source path must exist, be a directory, and be
// readable, writable, and searchable.
//
// Everything checked here is fatal by design. Per-file problems (vanished
// files, unreadable subtrees, failed renames) are handled downstream as
// skip outcomes; preflight only covers the cases where starting the run
// at all would be wrong.
package preflight
