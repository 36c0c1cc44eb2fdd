// Package patherrors provides structured error types for the winpathtools library.
//
// Import path: github.com/jmharte/winpathtools/patherrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [ValidationError]: ill-formed path text (mixed slashes, bad drive letter,
//     bad domain name, bad segment, excessive length)
//   - [ArgumentError]: contradictory or incomplete field combinations handed to
//     the formatter or converter
//   - [ResolutionError]: structural exhaustion during "."/".." resolution
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrArgument]: Matches any [ArgumentError]
//   - [ErrResolution]: Matches any [ResolutionError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Recoverability
//
// All errors in this taxonomy are local and recoverable; none is fatal to the
// process. Diagnostic detail (the offending segment, the failed check) attaches
// to the error for caller-side logging, not for programmatic branching.
package patherrors
