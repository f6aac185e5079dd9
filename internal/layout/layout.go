package layout

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"pigeonhole/internal/bucket"
)

// NoExtension is the directory segment grouping files that have no
// extension.
const NoExtension = "no_extension"

// SplitStem splits a file name into stem and extension. The extension
// includes its leading dot. Dotfiles (".bashrc") and names ending in a
// bare dot ("file.") are treated as stems with no extension, so the
// disambiguation suffix lands before a real extension only.
func SplitStem(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	if ext == "" || ext == "." || ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// Extension returns the extension path segment for a file name: the
// lowercased extension without its dot, or NoExtension when the name has
// none.
func Extension(name string) string {
	_, ext := SplitStem(name)
	if ext == "" {
		return NoExtension
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// TargetSpec is the classification tuple a file folds into: extension
// segment, local calendar date, and size category. It is derived per run
// and never stored.
type TargetSpec struct {
	Extension string
	Year      int
	Month     time.Month
	Day       int
	Category  bucket.Category
}

// NewTargetSpec builds the spec for one file. The timestamp is converted
// to local time before the calendar date is taken.
func NewTargetSpec(extension string, ts time.Time, category bucket.Category) TargetSpec {
	local := ts.Local()
	return TargetSpec{
		Extension: extension,
		Year:      local.Year(),
		Month:     local.Month(),
		Day:       local.Day(),
		Category:  category,
	}
}

// RelativeDir folds the spec into its relative directory,
// extension/YYYY/MM/DD/category.
func (s TargetSpec) RelativeDir() string {
	return filepath.Join(
		s.Extension,
		fmt.Sprintf("%04d", s.Year),
		fmt.Sprintf("%02d", int(s.Month)),
		fmt.Sprintf("%02d", s.Day),
		s.Category.String(),
	)
}
