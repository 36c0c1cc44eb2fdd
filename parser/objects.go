package parser

// Object is the structured representation of a parsed path. It is a tagged
// union: exactly one of [WindowsPath], [UNCPath], or [UnknownPath], each
// carrying only the fields meaningful for its shape. Objects are plain
// values; the supported mutate-then-reformat pattern (append a segment,
// re-render through the formatter) is single-owner and needs no locking.
type Object interface {
	// PathType reports which variant this object is.
	PathType() FilePathType
}

// WindowsPath is a local path rooted at a drive letter.
type WindowsPath struct {
	// Scheme is the textual wrapping to render with. The formatter treats
	// the zero value as SchemePlain.
	Scheme Scheme
	// DriveLetter is the drive letter, without the colon.
	DriveLetter string
	// Segments are the components of the local-path portion, in order,
	// free of delimiters. Nil when the path has no local-path portion.
	Segments []string
	// TrailingSlash records whether the local-path portion ended in a slash.
	TrailingSlash bool
}

// PathType implements Object.
func (*WindowsPath) PathType() FilePathType { return TypeWindows }

// UNCPath is a network path rooted at a domain name.
type UNCPath struct {
	// Scheme is the textual wrapping to render with. The formatter treats
	// the zero value as SchemePlain.
	Scheme Scheme
	// DomainName is the host or domain the path is rooted at.
	DomainName string
	// DriveLetter is the administrative-share drive letter, without the
	// '$'. Empty means the path carries no share marker; a legal marker is
	// never empty, so the two states cannot collide.
	DriveLetter string
	// Segments are the components of the local-path portion, in order.
	// Nil when the path has no local-path portion.
	Segments []string
	// TrailingSlash records whether the local-path portion ended in a slash.
	TrailingSlash bool
}

// PathType implements Object.
func (*UNCPath) PathType() FilePathType { return TypeUNC }

// UnknownPath is a path of no recognized shape, kept as an opaque delimited
// token list.
type UnknownPath struct {
	// Raw is the original text.
	Raw string
	// Delimiter is the slash character used to re-render the segments.
	// Zero when the text contained no delimiter after its first component.
	Delimiter byte
	// Segments are the delimited tokens of the original text, in order.
	Segments []string
	// TrailingSlash records whether the original text ended in a slash.
	TrailingSlash bool
}

// PathType implements Object.
func (*UnknownPath) PathType() FilePathType { return TypeUnknown }

// Compile-time interface checks.
var (
	_ Object = (*WindowsPath)(nil)
	_ Object = (*UNCPath)(nil)
	_ Object = (*UnknownPath)(nil)
)
