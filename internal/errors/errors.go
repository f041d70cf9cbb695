package errors

import (
	"fmt"
)

// MatchError is the structured error type for matchquery.
// It carries the code, category, and cause needed to decide whether a
// failure aborts a translation or is suppressed by a leniency rule.
type MatchError struct {
	// Code is the unique error code (e.g., "ERR_201_UNKNOWN_VARIANT").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, Wire, Field, ...).
	Category Category

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error
}

// Error implements the error interface.
func (e *MatchError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *MatchError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with MatchError.
func (e *MatchError) Is(target error) bool {
	if t, ok := target.(*MatchError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *MatchError) WithDetail(key, value string) *MatchError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// New creates a new MatchError with the given code and message.
// The category is derived from the code.
func New(code string, message string, cause error) *MatchError {
	return &MatchError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Cause:    cause,
	}
}

// ConfigError creates a configuration invariant violation.
func ConfigError(message string, cause error) *MatchError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// UnknownVariantError creates a wire decode error for an out-of-range
// enum discriminant. The raw value is attached as a detail.
func UnknownVariantError(what string, raw uint64) *MatchError {
	return New(ErrCodeUnknownVariant, fmt.Sprintf("unknown serialized %s [%d]", what, raw), nil).
		WithDetail("raw", fmt.Sprintf("%d", raw))
}

// FieldError creates a field resolution error.
func FieldError(message string, cause error) *MatchError {
	return New(ErrCodeFieldResolution, message, cause)
}

// AnalyzerError creates an analyzer resolution error.
func AnalyzerError(message string, cause error) *MatchError {
	return New(ErrCodeAnalyzerNotFound, message, cause)
}

// GetCode extracts the error code from a MatchError.
// Returns empty string if not a MatchError.
func GetCode(err error) string {
	if me, ok := err.(*MatchError); ok {
		return me.Code
	}
	return ""
}

// HasCode reports whether err is a MatchError carrying the given code.
func HasCode(err error, code string) bool {
	return GetCode(err) == code
}
