package parser

import "github.com/jmharte/winpathtools/internal/pathscan"

// FilePathType classifies a path string by its structural shape.
type FilePathType = pathscan.FilePathType

// Scheme classifies the textual wrapping around a path.
type Scheme = pathscan.Scheme

const (
	// TypeWindows is a local path rooted at a drive letter, e.g. `c:\logs`.
	TypeWindows = pathscan.TypeWindows
	// TypeUNC is a network path rooted at a domain name, e.g. `\\fs01\logs`.
	TypeUNC = pathscan.TypeUNC
	// TypeAmbiguous marks a path that validates as both Windows and UNC.
	// Downstream consumers treat it exactly like TypeUnknown.
	TypeAmbiguous = pathscan.TypeAmbiguous
	// TypeUnknown marks a path that validates as neither Windows nor UNC.
	TypeUnknown = pathscan.TypeUnknown
)

const (
	// SchemePlain is unprefixed native path text, e.g. `c:\logs`.
	SchemePlain = pathscan.SchemePlain
	// SchemeFileURI is file://-prefixed, forward-slash-delimited text.
	SchemeFileURI = pathscan.SchemeFileURI
	// SchemeShortPrefixed is text carrying the short provider prefix.
	SchemeShortPrefixed = pathscan.SchemeShortPrefixed
	// SchemeLongPrefixed is text carrying the fully qualified provider prefix.
	SchemeLongPrefixed = pathscan.SchemeLongPrefixed
	// SchemeUnknown is text matching none of the known scheme shapes.
	SchemeUnknown = pathscan.SchemeUnknown
)

// StripPrefix removes the first matching scheme prefix from path and reports
// which scheme matched. Unprefixed input is returned unchanged with
// SchemeUnknown.
func StripPrefix(path string) (string, Scheme) {
	return pathscan.StripPrefix(path)
}

// ClassifyScheme reports the textual scheme of path: one of the prefixed
// schemes, SchemePlain for unprefixed native text, or SchemeUnknown.
func ClassifyScheme(path string) Scheme {
	return pathscan.ClassifyScheme(path)
}

// ClassifyType classifies path as Windows, UNC, Ambiguous, or Unknown by
// running both structural validators.
func ClassifyType(path string) FilePathType {
	return pathscan.ClassifyType(path)
}
