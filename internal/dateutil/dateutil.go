// Package dateutil formats the build date shown on generated pages.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is given without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// tokens maps format tokens to Go layout fragments, longest first.
var tokens = []struct {
	token  string
	layout string
}{
	{"dddd", "Monday"},
	{"ddd", "Mon"},
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named shortcuts for common formats.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"full":     "dddd, MMMM D, YYYY",
}

// Layout converts a format such as "DD/MM/YYYY" into a Go time layout.
// Text inside brackets is copied literally, so "[Week of] MMM D" keeps
// "Week of" intact.
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			literal, after, ok := strings.Cut(rest[1:], "]")
			if !ok {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(literal)
			rest = after
			continue
		}
		rest = writeToken(&b, rest)
	}
	return b.String(), nil
}

// writeToken emits the layout for the token at the start of s, or its first
// byte when no token matches, and returns what is left.
func writeToken(b *strings.Builder, s string) string {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.layout)
			return s[len(t.token):]
		}
	}
	b.WriteByte(s[0])
	return s[1:]
}

// Resolve formats now according to value:
//   - "auto" uses DefaultDateFormat
//   - "auto:FORMAT" uses FORMAT or a preset name
//   - anything else is returned unchanged
func Resolve(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := DefaultDateFormat
	if lower != "auto" {
		if !strings.HasPrefix(lower, "auto:") {
			return "", fmt.Errorf("%w: %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		spec := value[len("auto:"):]
		if spec == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		format = spec
		if preset, ok := Presets[strings.ToLower(spec)]; ok {
			format = preset
		}
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
