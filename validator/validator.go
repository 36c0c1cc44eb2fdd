// Package validator validates Windows and UNC path text.
//
// It exposes the individual structural checks (file names, fragments, whole
// paths) both as plain predicates and as error-returning checks that carry
// the failed check and offending segment, plus a combined [Validate] that
// reports why a path failed each shape.
//
// # Quick Start
//
//	result := validator.Validate(`c:\logs|bad`)
//	if !result.Valid {
//	    fmt.Println(result.WindowsReason) // names the offending segment
//	}
//
// Individual predicates:
//
//	validator.IsValidFileName("PRN.txt")       // false: reserved device name
//	validator.IsValidFragment(`a\..\b`)        // true
//	validator.IsValidWindowsPath(`c:\local`)   // true
//	validator.IsValidUNCPath(`\\fs01\c$\logs`) // true
package validator

import (
	"github.com/jmharte/winpathtools/internal/pathscan"
	"github.com/jmharte/winpathtools/parser"
)

// Result reports the outcome of validating one path string against both
// structural shapes.
type Result struct {
	// Path is the validated text.
	Path string
	// Type is the resulting classification.
	Type parser.FilePathType
	// Scheme is the textual scheme of the input.
	Scheme parser.Scheme
	// Valid is true when the path validates as at least one shape.
	Valid bool
	// WindowsValid reports validity as a Windows drive-letter path.
	WindowsValid bool
	// UNCValid reports validity as a UNC network path.
	UNCValid bool
	// WindowsReason explains the Windows rejection. Empty when WindowsValid.
	WindowsReason string
	// UNCReason explains the UNC rejection. Empty when UNCValid.
	UNCReason string
}

// Validate runs both structural validators against path and reports the
// classification along with the reason each shape rejected it.
func Validate(path string) *Result {
	result := &Result{
		Path:   path,
		Scheme: pathscan.ClassifyScheme(path),
	}

	if err := pathscan.CheckWindows(path); err != nil {
		result.WindowsReason = err.Error()
	} else {
		result.WindowsValid = true
	}
	if err := pathscan.CheckUNC(path); err != nil {
		result.UNCReason = err.Error()
	} else {
		result.UNCValid = true
	}

	switch {
	case result.WindowsValid && result.UNCValid:
		result.Type = parser.TypeAmbiguous
	case result.WindowsValid:
		result.Type = parser.TypeWindows
	case result.UNCValid:
		result.Type = parser.TypeUNC
	default:
		result.Type = parser.TypeUnknown
	}
	result.Valid = result.WindowsValid || result.UNCValid
	return result
}

// IsValidFileName reports whether name is a legal single path segment: no
// reserved characters, not composed entirely of dots, not a reserved DOS
// device name (with or without an extension), and at most 255 characters.
func IsValidFileName(name string) bool {
	return pathscan.CheckFileName(name) == nil
}

// IsValidFragment reports whether path is a structurally valid fragment:
// consistent slashes, no ".." escaping above the fragment root, and every
// concrete segment a legal file name.
func IsValidFragment(path string) bool {
	return pathscan.CheckFragment(path) == nil
}

// IsValidWindowsPath reports whether path is a valid Windows drive-letter
// path in any recognized scheme.
func IsValidWindowsPath(path string) bool {
	return pathscan.CheckWindows(path) == nil
}

// IsValidUNCPath reports whether path is a valid UNC network path in any
// recognized scheme.
func IsValidUNCPath(path string) bool {
	return pathscan.CheckUNC(path) == nil
}

// CheckFileName is the error-returning form of IsValidFileName. The
// returned error is a *patherrors.ValidationError naming the failed check.
func CheckFileName(name string) error {
	return pathscan.CheckFileName(name)
}

// CheckFragment is the error-returning form of IsValidFragment.
func CheckFragment(path string) error {
	return pathscan.CheckFragment(path)
}

// CheckWindowsPath is the error-returning form of IsValidWindowsPath.
func CheckWindowsPath(path string) error {
	return pathscan.CheckWindows(path)
}

// CheckUNCPath is the error-returning form of IsValidUNCPath.
func CheckUNCPath(path string) error {
	return pathscan.CheckUNC(path)
}

// ClassifyType classifies path as Windows, UNC, Ambiguous, or Unknown.
func ClassifyType(path string) parser.FilePathType {
	return pathscan.ClassifyType(path)
}
