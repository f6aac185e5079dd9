package filetime

import (
	"os"
	"time"
)

// Source names what actually produced a resolved timestamp.
type Source string

const (
	SourceBirth        Source = "birth"
	SourceModification Source = "modification"
	SourceAccess       Source = "access"
	// SourceClock marks the wall-clock substitute used when no stored
	// timestamp could be read at all.
	SourceClock Source = "clock"
)

// Resolution is the outcome of resolving one file's timestamp: the value
// itself plus provenance, so callers can surface degraded lookups without
// failing the file.
type Resolution struct {
	Time      time.Time
	Attribute Attribute
	Source    Source
	Note      string
}

// Degraded reports whether the resolved value came from a fallback source
// instead of the requested attribute.
func (r Resolution) Degraded() bool {
	switch r.Attribute {
	case Creation:
		return r.Source != SourceBirth
	case Modification:
		return r.Source != SourceModification
	case Access:
		return r.Source != SourceAccess
	default:
		return false
	}
}

// BirthProbe queries a file's birth time. ok is false when the platform or
// filesystem does not record one; err is reserved for real I/O failures.
type BirthProbe func(path string) (ts time.Time, ok bool, err error)

// TimeProbe queries a single stored timestamp.
type TimeProbe func(path string) (time.Time, error)

// Resolver resolves file timestamps with the configured fallback chain.
// The zero value is not usable; construct with NewResolver.
type Resolver struct {
	birth  BirthProbe
	modify TimeProbe
	access TimeProbe
	now    func() time.Time
}

// NewResolver returns a Resolver backed by the platform probes.
func NewResolver() *Resolver {
	return &Resolver{
		birth:  birthTime,
		modify: modificationTime,
		access: accessTime,
		now:    time.Now,
	}
}

// NewResolverWithProbes returns a Resolver with selected probes replaced.
// Nil arguments keep the platform default. Intended for tests that need to
// simulate capability gaps or stat failures.
func NewResolverWithProbes(birth BirthProbe, modify, access TimeProbe, now func() time.Time) *Resolver {
	r := NewResolver()
	if birth != nil {
		r.birth = birth
	}
	if modify != nil {
		r.modify = modify
	}
	if access != nil {
		r.access = access
	}
	if now != nil {
		r.now = now
	}
	return r
}

// Resolve returns a usable timestamp for path under the requested
// attribute. It never fails: a missing capability falls back to the
// modification time and a failed stat falls back to the current wall
// clock, with the degradation recorded on the Resolution.
func (r *Resolver) Resolve(path string, attr Attribute) Resolution {
	switch attr {
	case Creation:
		ts, ok, err := r.birth(path)
		if err == nil && ok {
			return Resolution{Time: ts, Attribute: attr, Source: SourceBirth}
		}
		res := r.resolveModification(path, attr)
		note := "birth time not recorded by the filesystem"
		if err != nil {
			note = "birth time query failed: " + err.Error()
		}
		if res.Note != "" {
			note += "; " + res.Note
		}
		res.Note = note
		return res
	case Access:
		ts, err := r.access(path)
		if err != nil {
			return Resolution{
				Time:      r.now(),
				Attribute: attr,
				Source:    SourceClock,
				Note:      "access time unavailable: " + err.Error(),
			}
		}
		return Resolution{Time: ts, Attribute: attr, Source: SourceAccess}
	default:
		return r.resolveModification(path, attr)
	}
}

func (r *Resolver) resolveModification(path string, attr Attribute) Resolution {
	ts, err := r.modify(path)
	if err != nil {
		return Resolution{
			Time:      r.now(),
			Attribute: attr,
			Source:    SourceClock,
			Note:      "modification time unavailable: " + err.Error(),
		}
	}
	return Resolution{Time: ts, Attribute: attr, Source: SourceModification}
}

func modificationTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
