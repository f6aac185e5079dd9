// Package runlock provides the per-source-tree advisory lock that keeps
// two pigeonhole processes from reorganizing the same tree at once.
//
// The lock is a flock on a file in the log directory, named by a digest
// of the absolute source root. Runs against different trees are free to
// proceed in parallel.
package runlock
