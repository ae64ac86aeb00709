package dateseq

import (
	"fmt"
	"strings"
	"time"
)

// Duration is a calendar span: whole years, months, weeks and days plus an
// optional sub-day clock component.
//
// Calendar units and clock units must stay separate because they do not
// commute: adding "1 month" to Jan 31 is a calendar operation (time.AddDate),
// while adding "90 minutes" is elapsed time (time.Add). A Duration carries
// both parts and applies them in that order.
//
// The zero Duration means "unspecified"; the engine substitutes the 1-day
// default. Durations are immutable values.
type Duration struct {
	Years  int
	Months int
	Weeks  int
	Days   int

	// Clock is the sub-day component (hours/minutes/seconds).
	Clock time.Duration
}

// DefaultIncrement is the step used when a request leaves the increment
// unspecified.
var DefaultIncrement = Duration{Days: 1}

// IsZero reports whether the duration is entirely unset.
func (d Duration) IsZero() bool {
	return d.Years == 0 && d.Months == 0 && d.Weeks == 0 && d.Days == 0 && d.Clock == 0
}

// HasClockPart reports whether the duration carries a nonzero sub-day
// component. Drives the default output format: any clock part switches the
// sequence from date to timestamp formatting.
func (d Duration) HasClockPart() bool {
	return d.Clock != 0
}

// AddTo returns t advanced by one duration step. t is not mutated.
func (d Duration) AddTo(t time.Time) time.Time {
	return t.AddDate(d.Years, d.Months, d.Weeks*7+d.Days).Add(d.Clock)
}

// SubFrom returns t moved one duration step backwards. t is not mutated.
func (d Duration) SubFrom(t time.Time) time.Time {
	return t.AddDate(-d.Years, -d.Months, -(d.Weeks*7 + d.Days)).Add(-d.Clock)
}

// step advances cursor one increment in the direction given by reverse.
func (d Duration) step(cursor time.Time, reverse bool) time.Time {
	if reverse {
		return d.SubFrom(cursor)
	}
	return d.AddTo(cursor)
}

// String renders the duration in the "3 days 2h30m" style used by error
// messages and verbose logs.
func (d Duration) String() string {
	if d.IsZero() {
		return "0"
	}
	var parts []string
	appendUnit := func(n int, unit string) {
		if n == 0 {
			return
		}
		if n == 1 || n == -1 {
			parts = append(parts, fmt.Sprintf("%d %s", n, unit))
			return
		}
		parts = append(parts, fmt.Sprintf("%d %ss", n, unit))
	}
	appendUnit(d.Years, "year")
	appendUnit(d.Months, "month")
	appendUnit(d.Weeks, "week")
	appendUnit(d.Days, "day")
	if d.Clock != 0 {
		parts = append(parts, d.Clock.String())
	}
	return strings.Join(parts, " ")
}
