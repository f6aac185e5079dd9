//go:build darwin

package filetime

import (
	"time"

	"golang.org/x/sys/unix"
)

// birthTime reads st_birthtimespec, which APFS and HFS+ always record.
func birthTime(path string) (time.Time, bool, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, false, err
	}
	return time.Unix(st.Birthtimespec.Unix()), true, nil
}

func accessTime(path string) (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, err
	}
	return time.Unix(st.Atimespec.Unix()), nil
}
