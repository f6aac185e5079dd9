// Package filetime resolves the timestamp a file is classified by.
//
// A run selects one Attribute (creation, modification, or access) and the
// Resolver maps every file to a usable timestamp under a three-tier
// fallback chain: the exact attribute first, then modification time when
// the platform cannot report a birth time, then the current wall clock
// when even the stat fails. Resolve never returns an error; the rest of
// the pipeline has no representation for an unknown date, so every file
// must classify somewhere.
//
// Platform access is isolated behind two probe functions (birth time and
// access time) with per-OS implementations. Linux queries statx for
// STATX_BTIME and treats an unsupported syscall or an unset mask bit as a
// capability gap rather than an error. The probes are injectable so the
// fallback levels can be exercised in tests without a cooperating
// filesystem.
package filetime
