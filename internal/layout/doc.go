// Package layout derives the relative target directory for a file from its
// extension, a resolved timestamp, and a size category.
//
// The produced layout is extension/year/month/day/category, in that fixed
// order, with zero-padded date segments. Dates use the local calendar of
// the timestamp: runs are reproducible within one timezone but files may
// land in different day buckets if the host timezone changes between runs.
//
// Extension handling follows filesystem convention rather than
// filepath.Ext: a leading-dot name such as .bashrc is a stem with no
// extension, and a name with an empty extension ("file.") has none either.
// Files without an extension are grouped under the literal no_extension
// segment.
package layout
