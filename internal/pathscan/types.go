// Package pathscan implements the lexical core shared by the public path
// packages: scheme prefix rules, part extraction, and the validity checks
// that drive path-type classification.
package pathscan

// FilePathType classifies a path string by its structural shape.
type FilePathType string

const (
	// TypeWindows is a local path rooted at a drive letter, e.g. `c:\logs`.
	TypeWindows FilePathType = "Windows"
	// TypeUNC is a network path rooted at a domain name, e.g. `\\fs01\logs`.
	TypeUNC FilePathType = "UNC"
	// TypeAmbiguous marks a path that validates as both Windows and UNC.
	// It only arises transiently during classification and is treated as
	// TypeUnknown by every downstream consumer.
	TypeAmbiguous FilePathType = "Ambiguous"
	// TypeUnknown marks a path that validates as neither Windows nor UNC.
	TypeUnknown FilePathType = "Unknown"
)

// Scheme classifies the textual wrapping around a path.
type Scheme string

const (
	// SchemePlain is unprefixed native path text, e.g. `c:\logs`.
	SchemePlain Scheme = "plain"
	// SchemeFileURI is file://-prefixed, forward-slash-delimited text.
	SchemeFileURI Scheme = "file-uri"
	// SchemeShortPrefixed is text carrying the short provider prefix.
	SchemeShortPrefixed Scheme = "short-prefixed"
	// SchemeLongPrefixed is text carrying the fully qualified provider prefix.
	SchemeLongPrefixed Scheme = "long-prefixed"
	// SchemeUnknown is text matching none of the known scheme shapes.
	SchemeUnknown Scheme = "unknown"
)

// Provider prefixes and URI markers recognized by the scheme rules and
// reproduced by the formatter.
const (
	PrefixShort      = "FileSystem::"
	PrefixLong       = `Microsoft.PowerShell.Core\FileSystem::`
	PrefixFileURI    = "file://"
	PrefixFileURIAbs = "file:///"
)

// Length limits applied during validation.
const (
	// MaxPathLength is the maximum length of the prefix-stripped path text.
	MaxPathLength = 255
	// MaxFileNameLength is the maximum length of a single path segment.
	MaxFileNameLength = 255
)
