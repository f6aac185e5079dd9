// Package snapshot materializes the list of regular files beneath a root
// before any of them is moved.
//
// Renaming entries inside a tree that is still being iterated is
// undefined behavior on most filesystems, so the walk and the mutation
// phase are strictly separated: Collect returns a complete, immutable
// listing and the relocation engine works only from that. Entries that
// cannot be read are logged and skipped; only a failure on the root
// itself aborts the walk.
package snapshot
