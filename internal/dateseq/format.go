package dateseq

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// Default output patterns, selected when a request carries no explicit
// format.
const (
	// DefaultDateFormat renders plain calendar dates.
	DefaultDateFormat = "%Y-%m-%d"

	// DefaultDateTimeFormat renders timestamps; chosen whenever the
	// request involves a nonzero time-of-day component.
	DefaultDateTimeFormat = "%Y-%m-%dT%H:%M:%S"
)

// supportedDirectives lists the strftime conversion characters the pattern
// engine understands. Literal characters and %% pass through; anything else
// after a % is a configuration error.
const supportedDirectives = "aAbBcCdDeFgGhHIjmMnpPrRsStTuUvVwWxXyYzZ%"

// Formatter renders a cursor value as one output line.
//
// The engine builds its own strftime-backed formatter from the request;
// the interface exists so callers (and tests) can substitute a renderer
// with a reachable failure path.
type Formatter interface {
	Format(t time.Time) (string, error)
}

// ValidatePattern checks an strftime pattern for unknown directives.
// Validation runs before iteration so a malformed pattern can never produce
// partial output.
func ValidatePattern(pattern string) error {
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' {
			continue
		}
		if i+1 >= len(runes) {
			return NewInvalidFormatError(pattern, "trailing %")
		}
		i++
		if !containsRune(supportedDirectives, runes[i]) {
			return NewInvalidFormatError(pattern,
				fmt.Sprintf("unknown directive %%%c", runes[i]))
		}
	}
	return nil
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// ResolvePattern returns the effective strftime pattern for a request:
// the explicit format verbatim, otherwise the timestamp default when From,
// To or the increment carries a nonzero hour/minute/second, otherwise the
// date default.
func ResolvePattern(r *Request) string {
	if r.Format != "" {
		return r.Format
	}
	if hasClock(r.From) || (r.To != nil && hasClock(*r.To)) || r.increment().HasClockPart() {
		return DefaultDateTimeFormat
	}
	return DefaultDateFormat
}

// hasClock reports whether t carries a nonzero time-of-day.
func hasClock(t time.Time) bool {
	h, m, s := t.Clock()
	return h != 0 || m != 0 || s != 0
}

// patternFormatter renders cursors with a validated strftime pattern.
type patternFormatter struct {
	pattern string
}

// newPatternFormatter validates the resolved pattern and returns a
// formatter for it.
func newPatternFormatter(r *Request) (*patternFormatter, error) {
	pattern := ResolvePattern(r)
	if err := ValidatePattern(pattern); err != nil {
		return nil, err
	}
	return &patternFormatter{pattern: pattern}, nil
}

// Format implements Formatter. With a validated pattern the strftime
// rendering itself cannot fail.
func (f *patternFormatter) Format(t time.Time) (string, error) {
	return strftime.Format(f.pattern, t), nil
}
