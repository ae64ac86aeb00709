package dateseq

import (
	"errors"
	"fmt"
	"time"
)

// ConfigError represents an invalid request detected before iteration.
//
// Configuration errors include:
//   - Conflicting filters: more than one business-day mode requested
//   - Invalid limit: a negative row limit
//   - Invalid format: an strftime pattern with unknown directives
//   - Unbounded request: Generate called with neither end date nor limit
//
// A ConfigError is always raised before any output is produced; a request
// that passes validation cannot fail with one mid-sequence.
type ConfigError struct {
	// Code identifies the error category.
	Code ConfigErrorCode

	// Message is a human-readable description.
	Message string

	// Field names the offending request field, when one applies.
	Field string
}

// ConfigErrorCode categorizes configuration errors.
type ConfigErrorCode string

const (
	// ErrCodeConflictingFilters indicates more than one business-day mode.
	ErrCodeConflictingFilters ConfigErrorCode = "CONFLICTING_FILTERS"

	// ErrCodeInvalidLimit indicates a negative row limit.
	ErrCodeInvalidLimit ConfigErrorCode = "INVALID_LIMIT"

	// ErrCodeInvalidFormat indicates an unusable strftime pattern.
	ErrCodeInvalidFormat ConfigErrorCode = "INVALID_FORMAT"

	// ErrCodeUnboundedRequest indicates Generate was asked for an
	// unbounded sequence; use Iterator for those.
	ErrCodeUnboundedRequest ConfigErrorCode = "UNBOUNDED_REQUEST"
)

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// NewInvalidFormatError creates a ConfigError for an unusable pattern.
func NewInvalidFormatError(pattern, reason string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidFormat,
		Message: fmt.Sprintf("invalid date format %q: %s", pattern, reason),
		Field:   "format",
	}
}

// FormatError represents a per-element formatting failure.
//
// With a validated pattern this is practically unreachable, but the error
// path is modeled so that a custom Formatter can fail: in Mode A the whole
// Generate call fails with no partial result, in Mode B the failing pull
// returns the error and the iterator refuses further pulls.
type FormatError struct {
	// Pattern is the effective strftime pattern in use.
	Pattern string

	// Value is the cursor that could not be rendered.
	Value time.Time

	// Err is the underlying formatter error.
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot format %s with pattern %q: %v",
		e.Value.Format(time.RFC3339), e.Pattern, e.Err)
}

// Unwrap returns the underlying formatter error.
func (e *FormatError) Unwrap() error {
	return e.Err
}
