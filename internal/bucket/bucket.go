package bucket

// Category names a size bucket. The string value is used directly as a
// path segment, so the constants are lowercase.
type Category string

const (
	Small  Category = "small"
	Medium Category = "medium"
	Large  Category = "large"
)

func (c Category) String() string { return string(c) }

const (
	// DefaultSmallMax is the default small/medium boundary (1 MiB).
	DefaultSmallMax int64 = 1 << 20
	// DefaultMediumMax is the default medium/large boundary (10 MiB).
	DefaultMediumMax int64 = 10 << 20
)

// Thresholds carries the two category boundaries in bytes. Sizes below
// SmallMax are small, sizes below MediumMax are medium, everything else
// is large.
type Thresholds struct {
	SmallMax  int64
	MediumMax int64
}

// DefaultThresholds returns the built-in 1 MiB / 10 MiB boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{SmallMax: DefaultSmallMax, MediumMax: DefaultMediumMax}
}

// Categorize places size into its bucket. It is total: any size outside
// the configured boundaries is large.
func Categorize(size int64, t Thresholds) Category {
	switch {
	case size < t.SmallMax:
		return Small
	case size < t.MediumMax:
		return Medium
	default:
		return Large
	}
}
