// Package converter reformats path text between type/scheme combinations.
//
// A conversion is a one-shot reparse and reformat: the input is parsed, the
// requested target type and scheme are substituted (each defaulting to the
// parsed value), and the result is rendered through the formatter.
//
// # Quick Start
//
// Convert a UNC administrative-share path to its local form:
//
//	result, err := converter.ConvertWithOptions(`\\domain.name\c$\local\path`,
//		converter.WithTargetType(parser.TypeWindows))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Formatted) // c:\local\path
//
// Or re-render in another scheme only:
//
//	result, err := converter.ConvertWithOptions(`c:\local\path`,
//		converter.WithTargetScheme(parser.SchemeFileURI))
//	// file:///c:/local/path
package converter

import (
	"github.com/jmharte/winpathtools/formatter"
	"github.com/jmharte/winpathtools/parser"
	"github.com/jmharte/winpathtools/patherrors"
)

// Result contains the outcome of one conversion.
type Result struct {
	// Source is the parsed representation of the input.
	Source *parser.Result
	// TargetType is the type the input was rendered as.
	TargetType parser.FilePathType
	// TargetScheme is the scheme the input was rendered in. Empty for
	// Unknown-typed targets, which carry a delimiter instead.
	TargetScheme parser.Scheme
	// Formatted is the rendered text.
	Formatted string
}

// Converter reformats path text between type/scheme combinations.
//
// The zero value converts to the parsed type and scheme, i.e. it reproduces
// the input of any valid path. A configured Converter is safe for
// concurrent use.
type Converter struct {
	// TargetType overrides the parsed path type. Empty keeps it.
	TargetType parser.FilePathType
	// TargetScheme overrides the parsed scheme. Empty keeps it.
	TargetScheme parser.Scheme
}

// New creates a new Converter.
func New() *Converter {
	return &Converter{}
}

// Convert parses path and re-renders it as the configured target type and
// scheme.
//
// Conversion fails with a *patherrors.ArgumentError when the target type
// needs a part the parsed object does not carry: UNC needs a domain name,
// Windows needs a drive letter. Converting a known shape to the Unknown
// type keeps only its local segments.
func (c *Converter) Convert(path string) (*Result, error) {
	source := parser.Parse(path)

	targetType := c.TargetType
	if targetType == "" {
		targetType = source.Type
	}

	obj, targetScheme, err := buildTarget(source, targetType, c.TargetScheme)
	if err != nil {
		return nil, err
	}
	formatted, err := formatter.Format(obj)
	if err != nil {
		return nil, err
	}
	return &Result{
		Source:       source,
		TargetType:   targetType,
		TargetScheme: targetScheme,
		Formatted:    formatted,
	}, nil
}

// buildTarget assembles the object to render from the parsed source and the
// requested target type/scheme.
func buildTarget(source *parser.Result, targetType parser.FilePathType, targetScheme parser.Scheme) (parser.Object, parser.Scheme, error) {
	segments, trailingSlash := sourceLocal(source)

	switch targetType {
	case parser.TypeWindows:
		drive := sourceDriveLetter(source)
		if drive == "" {
			return nil, "", &patherrors.ArgumentError{
				Field:   "DriveLetter",
				Value:   source.OriginalString,
				Message: "source path carries no drive letter",
			}
		}
		scheme := pickScheme(source, targetScheme)
		return &parser.WindowsPath{
			Scheme:        scheme,
			DriveLetter:   drive,
			Segments:      segments,
			TrailingSlash: trailingSlash,
		}, scheme, nil

	case parser.TypeUNC:
		unc := source.UNC()
		if unc == nil || unc.DomainName == "" {
			return nil, "", &patherrors.ArgumentError{
				Field:   "DomainName",
				Value:   source.OriginalString,
				Message: "source path carries no domain name",
			}
		}
		scheme := pickScheme(source, targetScheme)
		return &parser.UNCPath{
			Scheme:        scheme,
			DomainName:    unc.DomainName,
			DriveLetter:   unc.DriveLetter,
			Segments:      segments,
			TrailingSlash: trailingSlash,
		}, scheme, nil

	case parser.TypeUnknown, parser.TypeAmbiguous:
		return &parser.UnknownPath{
			Raw:           source.OriginalString,
			Delimiter:     sourceDelimiter(source),
			Segments:      segments,
			TrailingSlash: trailingSlash,
		}, "", nil

	default:
		return nil, "", &patherrors.ConfigError{
			Option:  "TargetType",
			Value:   targetType,
			Message: "not a convertible path type",
		}
	}
}

// pickScheme resolves the scheme to render in: the requested one, else the
// parsed one, else plain (a source of unknown shape has no scheme to keep).
func pickScheme(source *parser.Result, targetScheme parser.Scheme) parser.Scheme {
	if targetScheme != "" {
		return targetScheme
	}
	if source.Scheme != parser.SchemeUnknown {
		return source.Scheme
	}
	return parser.SchemePlain
}

// sourceDriveLetter returns the drive letter of either known shape.
func sourceDriveLetter(source *parser.Result) string {
	switch obj := source.Object.(type) {
	case *parser.WindowsPath:
		return obj.DriveLetter
	case *parser.UNCPath:
		return obj.DriveLetter
	default:
		return ""
	}
}

// sourceLocal returns the segment list and trailing-slash flag of any shape.
func sourceLocal(source *parser.Result) ([]string, bool) {
	switch obj := source.Object.(type) {
	case *parser.WindowsPath:
		return obj.Segments, obj.TrailingSlash
	case *parser.UNCPath:
		return obj.Segments, obj.TrailingSlash
	case *parser.UnknownPath:
		return obj.Segments, obj.TrailingSlash
	default:
		return nil, false
	}
}

// sourceDelimiter returns the delimiter to render an Unknown-typed target
// with: the source's own when it has one, '/' for file-URI sources, and
// '\' otherwise.
func sourceDelimiter(source *parser.Result) byte {
	if unknown := source.Unknown(); unknown != nil && unknown.Delimiter != 0 {
		return unknown.Delimiter
	}
	if source.Scheme == parser.SchemeFileURI {
		return '/'
	}
	return '\\'
}

// Option configures ConvertWithOptions.
type Option func(*Converter)

// WithTargetType sets the path type to render as.
func WithTargetType(t parser.FilePathType) Option {
	return func(c *Converter) { c.TargetType = t }
}

// WithTargetScheme sets the scheme to render in.
func WithTargetScheme(s parser.Scheme) Option {
	return func(c *Converter) { c.TargetScheme = s }
}

// Convert parses path and re-renders it using a default Converter, which
// reproduces the input of any valid path.
func Convert(path string) (*Result, error) {
	return New().Convert(path)
}

// ConvertWithOptions parses path and re-renders it using functional options.
func ConvertWithOptions(path string, opts ...Option) (*Result, error) {
	c := New()
	for _, opt := range opts {
		opt(c)
	}
	return c.Convert(path)
}
