//go:build !linux && !darwin

package filetime

import (
	"errors"
	"time"
)

// birthTime reports no birth-time capability on platforms without a
// supported query; the resolver falls back to modification time.
func birthTime(string) (time.Time, bool, error) {
	return time.Time{}, false, nil
}

func accessTime(string) (time.Time, error) {
	return time.Time{}, errors.ErrUnsupported
}
