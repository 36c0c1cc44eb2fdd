package pathscan

import "strings"

// prefixRule matches and strips one known scheme wrapping. Rules are tried
// in declaration order; the first match wins, giving deterministic priority.
type prefixRule struct {
	scheme Scheme
	strip  func(path string) (string, bool)
}

// prefixRules is the closed, ordered rule table for provider and URI
// prefixes. Plain text carries no prefix and is recognized separately by
// isPlain against the original string.
var prefixRules = []prefixRule{
	{
		scheme: SchemeShortPrefixed,
		strip: func(path string) (string, bool) {
			rest, ok := strings.CutPrefix(path, PrefixShort)
			return rest, ok
		},
	},
	{
		scheme: SchemeLongPrefixed,
		strip: func(path string) (string, bool) {
			rest, ok := strings.CutPrefix(path, PrefixLong)
			return rest, ok
		},
	},
	{
		// file:///c:... strips to c:... (drive-letter URI form).
		scheme: SchemeFileURI,
		strip: func(path string) (string, bool) {
			rest, ok := strings.CutPrefix(path, PrefixFileURIAbs)
			return rest, ok
		},
	},
	{
		// file://domain... strips to //domain... (UNC URI form). The
		// preceding rule already consumed any third slash, so this rule
		// fires only when file:// is not followed by one.
		scheme: SchemeFileURI,
		strip: func(path string) (string, bool) {
			if !strings.HasPrefix(path, PrefixFileURI) {
				return path, false
			}
			return path[len("file:"):], true
		},
	},
}

// StripPrefix removes the first matching scheme prefix from path and reports
// which scheme matched. Unprefixed input is returned unchanged with
// SchemeUnknown; use ClassifyScheme to additionally recognize plain text.
func StripPrefix(path string) (string, Scheme) {
	for _, rule := range prefixRules {
		if stripped, ok := rule.strip(path); ok {
			return stripped, rule.scheme
		}
	}
	return path, SchemeUnknown
}

// ClassifyScheme reports the textual scheme of path: one of the prefixed
// schemes, SchemePlain for unprefixed native text, or SchemeUnknown.
func ClassifyScheme(path string) Scheme {
	if _, scheme := StripPrefix(path); scheme != SchemeUnknown {
		return scheme
	}
	if isPlain(path) {
		return SchemePlain
	}
	return SchemeUnknown
}

// isPlain reports whether path looks like unprefixed native text: a single
// drive letter followed by a colon, or a double backslash followed by an
// alphanumeric character.
func isPlain(path string) bool {
	if len(path) >= 2 && isLetter(path[0]) && path[1] == ':' {
		return true
	}
	return len(path) >= 3 && path[0] == '\\' && path[1] == '\\' && isAlphanumeric(path[2])
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9')
}
