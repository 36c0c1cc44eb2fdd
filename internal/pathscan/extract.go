package pathscan

import (
	"strings"

	"github.com/jmharte/winpathtools/internal/slashutil"
)

// Extraction operates on prefix-stripped text and distinguishes "absent"
// (no structural boundary found) from "empty" (boundary found, nothing
// behind it) via the ok result. Values are returned raw; validity is the
// validator's concern.

// WindowsDriveLetter returns the text before the first colon. It is absent
// when the path contains no colon.
func WindowsDriveLetter(stripped string) (string, bool) {
	idx := strings.IndexByte(stripped, ':')
	if idx < 0 {
		return "", false
	}
	return stripped[:idx], true
}

// WindowsLocalPath returns everything after the first colon. It is absent
// when the path contains no colon.
func WindowsLocalPath(stripped string) (string, bool) {
	idx := strings.IndexByte(stripped, ':')
	if idx < 0 {
		return "", false
	}
	return stripped[idx+1:], true
}

// UNCDomainName returns the text between the leading double slash and the
// next slash. It is absent when the path does not start with two slashes.
func UNCDomainName(stripped string) (string, bool) {
	rest, ok := uncBody(stripped)
	if !ok {
		return "", false
	}
	for i := 0; i < len(rest); i++ {
		if slashutil.IsSlash(rest[i]) {
			return rest[:i], true
		}
	}
	return rest, true
}

// UNCDriveLetter returns the administrative-share drive letter: a letter
// token immediately followed by '$', recognized only as the first component
// after the domain name. It is absent when no such marker exists.
func UNCDriveLetter(stripped string) (string, bool) {
	comp, _, ok := uncShareComponent(stripped)
	if !ok {
		return "", false
	}
	return comp[:len(comp)-1], true
}

// UNCLocalPath returns the remainder after the administrative-share marker,
// or after the domain name when no marker is present. It is absent when
// nothing follows the domain name.
func UNCLocalPath(stripped string) (string, bool) {
	rest, ok := uncBody(stripped)
	if !ok {
		return "", false
	}
	sep := -1
	for i := 0; i < len(rest); i++ {
		if slashutil.IsSlash(rest[i]) {
			sep = i
			break
		}
	}
	if sep < 0 {
		return "", false
	}
	if _, tail, ok := uncShareComponent(stripped); ok {
		return tail, true
	}
	return rest[sep:], true
}

// uncBody returns the text after the leading double slash.
func uncBody(stripped string) (string, bool) {
	if len(stripped) < 2 || !slashutil.IsSlash(stripped[0]) || !slashutil.IsSlash(stripped[1]) {
		return "", false
	}
	return stripped[2:], true
}

// uncShareComponent locates the first component after the domain name and,
// when it is an administrative-share marker (letters followed by '$'),
// returns the component and the remainder behind it.
func uncShareComponent(stripped string) (comp string, tail string, ok bool) {
	rest, bodyOK := uncBody(stripped)
	if !bodyOK {
		return "", "", false
	}
	sep := -1
	for i := 0; i < len(rest); i++ {
		if slashutil.IsSlash(rest[i]) {
			sep = i
			break
		}
	}
	if sep < 0 {
		return "", "", false
	}
	after := rest[sep+1:]
	end := len(after)
	for i := 0; i < len(after); i++ {
		if slashutil.IsSlash(after[i]) {
			end = i
			break
		}
	}
	comp = after[:end]
	if !isShareMarker(comp) {
		return "", "", false
	}
	return comp, after[end:], true
}

// isShareMarker reports whether comp is one or more letters followed by '$'.
func isShareMarker(comp string) bool {
	if len(comp) < 2 || comp[len(comp)-1] != '$' {
		return false
	}
	for i := 0; i < len(comp)-1; i++ {
		if !isLetter(comp[i]) {
			return false
		}
	}
	return true
}
