// Package slashutil provides slash-analysis primitives shared by the path
// packages: mixed-slash detection, trailing-slash detection, segment
// splitting, and delimiter discovery.
package slashutil

import "strings"

// IsSlash reports whether c is a path delimiter, backslash or forward slash.
func IsSlash(c byte) bool {
	return c == '\\' || c == '/'
}

// HasMixedSlashes reports whether path contains both backslashes and
// forward slashes.
func HasMixedSlashes(path string) bool {
	return strings.IndexByte(path, '\\') >= 0 && strings.IndexByte(path, '/') >= 0
}

// HasTrailingSlash reports whether the last character of path is a slash.
// An empty path has no trailing slash.
func HasTrailingSlash(path string) bool {
	return path != "" && IsSlash(path[len(path)-1])
}

// Split splits path on runs of slashes, discarding empty tokens.
// Split("a//b\\c/") returns ["a", "b", "c"]; Split("") returns nil.
func Split(path string) []string {
	var segments []string
	start := -1
	for i := 0; i < len(path); i++ {
		if IsSlash(path[i]) {
			if start >= 0 {
				segments = append(segments, path[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		segments = append(segments, path[start:])
	}
	return segments
}

// FirstDelimiter returns the slash character immediately following the first
// path component, and whether one was found. It is used to pick a render
// delimiter for paths of unknown type.
func FirstDelimiter(path string) (byte, bool) {
	seen := false
	for i := 0; i < len(path); i++ {
		if IsSlash(path[i]) {
			if seen {
				return path[i], true
			}
			continue
		}
		seen = true
	}
	return 0, false
}
