package filetime

import (
	"fmt"
	"strings"
)

// Attribute selects which file timestamp a run classifies by. It is chosen
// once per run and immutable thereafter.
type Attribute string

const (
	Creation     Attribute = "creation"
	Modification Attribute = "modification"
	Access       Attribute = "access"
)

func (a Attribute) String() string { return string(a) }

// ParseAttribute maps user input onto an Attribute, case-insensitively.
func ParseAttribute(value string) (Attribute, error) {
	switch Attribute(strings.ToLower(strings.TrimSpace(value))) {
	case Creation:
		return Creation, nil
	case Modification:
		return Modification, nil
	case Access:
		return Access, nil
	default:
		return "", fmt.Errorf("time attribute: unsupported value %q (expected creation, modification, or access)", value)
	}
}
