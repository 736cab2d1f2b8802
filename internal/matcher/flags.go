package matcher

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsupportedFlag is returned for flag characters the matcher does not know.
var ErrUnsupportedFlag = errors.New("unsupported flag")

// Flags is a parsed flag string.
type Flags struct {
	Global     bool // g: return every match instead of the first
	IgnoreCase bool // i
	Multiline  bool // m: ^ and $ match at line boundaries
	DotAll     bool // s: . matches newline
	Unicode    bool // u: accepted, no effect
	Sticky     bool // y: accepted, no effect
	Indices    bool // d: accepted, no effect
}

// ParseFlags parses a flag string. Order and duplicates do not matter.
func ParseFlags(flags string) (Flags, error) {
	var f Flags
	for _, c := range flags {
		switch c {
		case 'g':
			f.Global = true
		case 'i':
			f.IgnoreCase = true
		case 'm':
			f.Multiline = true
		case 's':
			f.DotAll = true
		case 'u':
			f.Unicode = true
		case 'y':
			f.Sticky = true
		case 'd':
			f.Indices = true
		default:
			return Flags{}, fmt.Errorf("%w %q", ErrUnsupportedFlag, c)
		}
	}
	return f, nil
}

// String returns the canonical flag string: sorted, without duplicates.
func (f Flags) String() string {
	var chars []string
	set := map[string]bool{
		"d": f.Indices,
		"g": f.Global,
		"i": f.IgnoreCase,
		"m": f.Multiline,
		"s": f.DotAll,
		"u": f.Unicode,
		"y": f.Sticky,
	}
	for c, on := range set {
		if on {
			chars = append(chars, c)
		}
	}
	sort.Strings(chars)
	return strings.Join(chars, "")
}

// Normalize parses flags and returns them in canonical form.
func Normalize(flags string) (string, error) {
	f, err := ParseFlags(flags)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}
