package dateseq

import "time"

// BusinessFilter selects which weekdays survive iteration.
//
// The filter is an explicit enum rather than a pair of nullable booleans so
// an invalid combined state (business and business6 both asserted) cannot be
// represented. Weekday numbering follows ISO 8601: Monday=1 .. Sunday=7.
type BusinessFilter int

const (
	// FilterNone keeps every date.
	FilterNone BusinessFilter = iota

	// FilterBusiness keeps Monday through Friday.
	FilterBusiness

	// FilterNonBusiness keeps Saturday and Sunday.
	FilterNonBusiness

	// FilterBusiness6 keeps Monday through Saturday.
	FilterBusiness6

	// FilterNonBusiness6 keeps Sunday only.
	FilterNonBusiness6
)

// String returns the filter name used in scenario files and diagnostics.
func (f BusinessFilter) String() string {
	switch f {
	case FilterNone:
		return "none"
	case FilterBusiness:
		return "business"
	case FilterNonBusiness:
		return "non-business"
	case FilterBusiness6:
		return "business6"
	case FilterNonBusiness6:
		return "non-business6"
	}
	return "unknown"
}

// Keep reports whether t survives the filter.
func (f BusinessFilter) Keep(t time.Time) bool {
	switch f {
	case FilterBusiness:
		return isoWeekday(t) < 6
	case FilterNonBusiness:
		return isoWeekday(t) >= 6
	case FilterBusiness6:
		return isoWeekday(t) < 7
	case FilterNonBusiness6:
		return isoWeekday(t) == 7
	}
	return true
}

// isoWeekday maps Go's Sunday-based weekday to ISO numbering (Mon=1..Sun=7).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Request is the full set of resolved inputs for one sequence generation.
//
// A Request is built once from already-parsed external input (the CLI
// layer), consumed by one Generate or Iterator call, and discarded. The
// engine never mutates it.
type Request struct {
	// From is the first cursor candidate.
	From time.Time

	// To is the optional end bound; nil leaves the date axis unbounded.
	// Forward iteration excludes To, reverse iteration includes it.
	To *time.Time

	// Increment is the per-step calendar span. The zero value means
	// "unspecified" and defaults to one day.
	Increment Duration

	// Reverse steps the cursor backwards. Direction is decided by this
	// flag alone, never inferred from From/To ordering.
	Reverse bool

	// Filter is the business-day mode.
	Filter BusinessFilter

	// Header, when non-empty, is emitted as the first row. It is never
	// subject to Filter and counts against Limit.
	Header string

	// Limit caps the total emitted rows, header included. Zero means no
	// limit.
	Limit int

	// Format is the explicit strftime pattern. Empty selects %Y-%m-%d, or
	// %Y-%m-%dT%H:%M:%S when From, To or Increment carries a clock part.
	Format string
}

// Bounded reports whether the request terminates on its own (end date or
// limit present). Unbounded requests must go through Iterator.
func (r *Request) Bounded() bool {
	return r.To != nil || r.Limit > 0
}

// increment returns the effective step, applying the 1-day default.
func (r *Request) increment() Duration {
	if r.Increment.IsZero() {
		return DefaultIncrement
	}
	return r.Increment
}

// Validate checks the request for configuration errors. It never inspects
// the date values themselves: any From/To ordering is legal in either
// direction.
func (r *Request) Validate() error {
	if r.Limit < 0 {
		return &ConfigError{
			Code:    ErrCodeInvalidLimit,
			Message: "limit must be positive",
			Field:   "limit",
		}
	}
	if r.Format != "" {
		if err := ValidatePattern(r.Format); err != nil {
			return err
		}
	}
	return nil
}

// pastEnd reports whether cursor has crossed the end bound. The boundary is
// asymmetric on purpose: forward excludes To, reverse includes it.
func (r *Request) pastEnd(cursor time.Time) bool {
	if r.To == nil {
		return false
	}
	if r.Reverse {
		return cursor.Before(*r.To)
	}
	return !cursor.Before(*r.To)
}
