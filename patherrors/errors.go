// Package patherrors provides structured error types for winpathtools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ValidationError: ill-formed path text (mixed slashes, bad segment,
//     bad drive letter, bad domain name, excessive length)
//   - ArgumentError: contradictory or incomplete field combinations handed
//     to the formatter or converter (UNC without a domain name, Unknown
//     without a delimiter)
//   - ResolutionError: more ".." segments than pushed segments during
//     "."/".." resolution
//   - ConfigError: invalid options or missing inputs
//
// # Usage with errors.Is
//
//	result, err := resolver.Resolve(`c:\..\logs`)
//	if err != nil {
//	    var resErr *patherrors.ResolutionError
//	    if errors.As(err, &resErr) {
//	        log.Printf("cannot resolve %s: %s", resErr.Path, resErr.Message)
//	    }
//	}
package patherrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrValidation indicates ill-formed path text was rejected.
	ErrValidation = errors.New("validation error")

	// ErrArgument indicates a contradictory or incomplete field combination.
	ErrArgument = errors.New("argument error")

	// ErrResolution indicates ".." resolution ran out of segments.
	ErrResolution = errors.New("resolution error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ValidationError represents a rejection of ill-formed path text.
// It is an expected, recoverable outcome of validating untrusted input,
// never a defect in the caller.
type ValidationError struct {
	// Path is the path text that failed validation
	Path string
	// Check names the check that failed, e.g. "mixed-slashes",
	// "drive-letter", "domain-name", "segment", "length"
	Check string
	// Segment is the offending segment, when a single segment failed
	Segment string
	// Message describes the validation failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Check != "" {
		msg += " (" + e.Check + ")"
	}
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Segment != "" {
		msg += fmt.Sprintf(" at segment %q", e.Segment)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ArgumentError represents a contradictory or incomplete field combination
// handed to the formatter or converter. Callers should treat it as a defect
// to fix rather than an input condition to retry.
type ArgumentError struct {
	// Field is the name of the problematic field
	Field string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes why the combination is invalid
	Message string
}

// Error returns a human-readable error message.
func (e *ArgumentError) Error() string {
	msg := "argument error"
	if e.Field != "" {
		msg += " for " + e.Field
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ArgumentError has no underlying cause.
func (e *ArgumentError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

// ResolutionError represents structural exhaustion during "."/".."
// resolution: more ".." segments were seen than segments were pushed.
type ResolutionError struct {
	// Path is the path or segment list being resolved
	Path string
	// Message describes the resolution failure
	Message string
}

// Error returns a human-readable error message.
func (e *ResolutionError) Error() string {
	msg := "resolution error"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResolutionError has no underlying cause.
func (e *ResolutionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
