// Package formatter renders structured path objects back to text.
//
// Format is the inverse of parsing: for any valid plain-scheme path P,
// Format(parser.Parse(P).Object) reproduces P. The argument combination is
// validated before rendering — a UNC object without a domain name, a
// Windows object without a drive letter, or an Unknown object without a
// delimiter yields an [patherrors.ArgumentError], never a rendered string.
package formatter

import (
	"strings"

	"github.com/jmharte/winpathtools/internal/pathscan"
	"github.com/jmharte/winpathtools/parser"
	"github.com/jmharte/winpathtools/patherrors"
)

// Format renders obj to path text.
//
// The slash character is '/' for the file-URI scheme, the object's own
// delimiter for Unknown objects, and '\' otherwise. Known-type objects with
// a zero-valued Scheme render as plain text.
func Format(obj parser.Object) (string, error) {
	switch o := obj.(type) {
	case *parser.WindowsPath:
		return formatWindows(o)
	case *parser.UNCPath:
		return formatUNC(o)
	case *parser.UnknownPath:
		return formatUnknown(o)
	default:
		return "", &patherrors.ArgumentError{
			Field:   "Object",
			Value:   obj,
			Message: "not a path object",
		}
	}
}

func formatWindows(o *parser.WindowsPath) (string, error) {
	if o.DriveLetter == "" {
		return "", &patherrors.ArgumentError{
			Field:   "DriveLetter",
			Message: "Windows paths require a drive letter",
		}
	}
	scheme, err := normalizeScheme(o.Scheme)
	if err != nil {
		return "", err
	}
	slash := schemeSlash(scheme)
	prefix, err := schemePrefix(scheme, parser.TypeWindows)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(o.DriveLetter)
	b.WriteByte(':')
	b.WriteString(renderLocal(slash, o.Segments, o.TrailingSlash))
	return b.String(), nil
}

func formatUNC(o *parser.UNCPath) (string, error) {
	if o.DomainName == "" {
		return "", &patherrors.ArgumentError{
			Field:   "DomainName",
			Message: "UNC paths require a domain name",
		}
	}
	scheme, err := normalizeScheme(o.Scheme)
	if err != nil {
		return "", err
	}
	slash := schemeSlash(scheme)
	prefix, err := schemePrefix(scheme, parser.TypeUNC)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte(slash)
	b.WriteByte(slash)
	b.WriteString(o.DomainName)
	if o.DriveLetter != "" {
		b.WriteByte(slash)
		b.WriteString(o.DriveLetter)
		b.WriteByte('$')
	}
	b.WriteString(renderLocal(slash, o.Segments, o.TrailingSlash))
	return b.String(), nil
}

func formatUnknown(o *parser.UnknownPath) (string, error) {
	if o.Delimiter == 0 {
		return "", &patherrors.ArgumentError{
			Field:   "Delimiter",
			Message: "Unknown paths require a render delimiter",
		}
	}
	delim := string(o.Delimiter)
	out := strings.Join(o.Segments, delim)
	if o.TrailingSlash {
		out += delim
	}
	return out, nil
}

// renderLocal renders the local-path portion with a leading slash. An
// object with no segments renders as a single slash when TrailingSlash is
// set (a bare root) and as nothing otherwise.
func renderLocal(slash byte, segments []string, trailingSlash bool) string {
	if len(segments) == 0 {
		if trailingSlash {
			return string(slash)
		}
		return ""
	}
	var b strings.Builder
	for _, segment := range segments {
		b.WriteByte(slash)
		b.WriteString(segment)
	}
	if trailingSlash {
		b.WriteByte(slash)
	}
	return b.String()
}

// normalizeScheme defaults the zero value to plain and rejects schemes the
// formatter cannot render.
func normalizeScheme(scheme parser.Scheme) (parser.Scheme, error) {
	switch scheme {
	case "":
		return parser.SchemePlain, nil
	case parser.SchemePlain, parser.SchemeFileURI, parser.SchemeShortPrefixed, parser.SchemeLongPrefixed:
		return scheme, nil
	default:
		return "", &patherrors.ArgumentError{
			Field:   "Scheme",
			Value:   scheme,
			Message: "not a renderable scheme",
		}
	}
}

// schemeSlash returns the slash character for a known-type object.
func schemeSlash(scheme parser.Scheme) byte {
	if scheme == parser.SchemeFileURI {
		return '/'
	}
	return '\\'
}

// schemePrefix returns the textual prefix for a type/scheme pair. The
// file-URI form differs by type: Windows paths absorb the URI's third
// slash (file:///c:...), while UNC paths contribute their own double
// slash (file://domain...).
func schemePrefix(scheme parser.Scheme, pathType parser.FilePathType) (string, error) {
	switch scheme {
	case parser.SchemePlain:
		return "", nil
	case parser.SchemeFileURI:
		if pathType == parser.TypeWindows {
			return pathscan.PrefixFileURIAbs, nil
		}
		return "file:", nil
	case parser.SchemeShortPrefixed:
		return pathscan.PrefixShort, nil
	case parser.SchemeLongPrefixed:
		return pathscan.PrefixLong, nil
	default:
		return "", &patherrors.ArgumentError{
			Field:   "Scheme",
			Value:   scheme,
			Message: "not a renderable scheme",
		}
	}
}
