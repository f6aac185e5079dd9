// Package bucket maps file sizes onto the small/medium/large categories
// used as the final segment of a target directory.
//
// Categorization is a pure function over a size and an explicit Thresholds
// value; there is no ambient default state. Thresholds are expected to be
// ordered (SmallMax < MediumMax) by the time they reach this package —
// configuration validation enforces that, Categorize itself does not.
package bucket
