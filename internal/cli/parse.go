package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/roach88/dseq/internal/dateseq"
)

// dateLayouts lists accepted date argument forms, most specific first.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a date or timestamp argument. "today" and the empty
// string resolve to now's midnight in now's location.
func ParseDate(arg string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(arg)
	if s == "" || strings.EqualFold(s, "today") {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS)", arg)
}

// incrementPattern matches "<count>[ ]<unit>": "3 days", "3days", "2w", "7".
var incrementPattern = regexp.MustCompile(`^(\d+)\s*([A-Za-z]*)$`)

// ParseIncrement parses an increment argument into a calendar span. A bare
// count means days. The count must be positive: a zero step would never
// advance the cursor.
func ParseIncrement(arg string) (dateseq.Duration, error) {
	m := incrementPattern.FindStringSubmatch(strings.TrimSpace(arg))
	if m == nil {
		return dateseq.Duration{}, fmt.Errorf(`invalid increment %q (want e.g. "3 days", "1 month", "2w")`, arg)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n == 0 {
		return dateseq.Duration{}, fmt.Errorf("increment count must be positive in %q", arg)
	}

	switch strings.ToLower(m[2]) {
	case "", "d", "day", "days":
		return dateseq.Duration{Days: n}, nil
	case "w", "week", "weeks":
		return dateseq.Duration{Weeks: n}, nil
	case "m", "mo", "month", "months":
		return dateseq.Duration{Months: n}, nil
	case "y", "year", "years":
		return dateseq.Duration{Years: n}, nil
	case "h", "hour", "hours":
		return dateseq.Duration{Clock: time.Duration(n) * time.Hour}, nil
	case "min", "minute", "minutes":
		return dateseq.Duration{Clock: time.Duration(n) * time.Minute}, nil
	case "s", "sec", "second", "seconds":
		return dateseq.Duration{Clock: time.Duration(n) * time.Second}, nil
	}
	return dateseq.Duration{}, fmt.Errorf("unknown increment unit %q in %q", m[2], arg)
}
