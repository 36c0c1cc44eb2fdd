package pathscan

import (
	"fmt"
	"strings"

	"github.com/jmharte/winpathtools/internal/netutil"
	"github.com/jmharte/winpathtools/internal/slashutil"
	"github.com/jmharte/winpathtools/patherrors"
)

// illegalNameChars are the characters a path segment may never contain.
const illegalNameChars = `<>:"/\|?*`

// reservedDeviceNames are the DOS device names rejected as file names,
// case-insensitively, with or without an extension.
var reservedDeviceNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// CheckFileName reports whether name is a legal single path segment.
// It returns nil when valid.
func CheckFileName(name string) error {
	if idx := strings.IndexAny(name, illegalNameChars); idx >= 0 {
		return &patherrors.ValidationError{
			Check:   "segment",
			Segment: name,
			Message: fmt.Sprintf("illegal character %q", name[idx]),
		}
	}
	if strings.Trim(name, ".") == "" {
		return &patherrors.ValidationError{
			Check:   "segment",
			Segment: name,
			Message: "name consists entirely of dots",
		}
	}
	base := name
	if idx := strings.IndexByte(name, '.'); idx >= 0 {
		base = name[:idx]
	}
	if _, reserved := reservedDeviceNames[strings.ToUpper(base)]; reserved {
		return &patherrors.ValidationError{
			Check:   "segment",
			Segment: name,
			Message: "reserved device name",
		}
	}
	if len(name) > MaxFileNameLength {
		return &patherrors.ValidationError{
			Check:   "segment",
			Segment: name,
			Message: fmt.Sprintf("name exceeds %d characters", MaxFileNameLength),
		}
	}
	return nil
}

// CheckFragment reports whether path is a structurally valid fragment:
// consistent slashes, no segment escaping above the fragment root, and
// every concrete segment a legal file name. It returns nil when valid.
func CheckFragment(path string) error {
	if slashutil.HasMixedSlashes(path) {
		return &patherrors.ValidationError{
			Path:    path,
			Check:   "mixed-slashes",
			Message: "fragment mixes backslashes and forward slashes",
		}
	}
	depth := 0
	for _, segment := range slashutil.Split(path) {
		if segment == ".." {
			depth--
			if depth < 0 {
				return &patherrors.ValidationError{
					Path:    path,
					Check:   "fragment-depth",
					Segment: segment,
					Message: `".." escapes above the fragment root`,
				}
			}
			continue
		}
		depth++
		if segment == "." {
			continue
		}
		if err := CheckFileName(segment); err != nil {
			verr := err.(*patherrors.ValidationError)
			verr.Path = path
			return verr
		}
	}
	return nil
}

// CheckWindows reports whether path is a valid Windows drive-letter path in
// any recognized scheme. It returns nil when valid.
func CheckWindows(path string) error {
	stripped, _ := StripPrefix(path)
	if err := checkCommon(path, stripped); err != nil {
		return err
	}
	drive, ok := WindowsDriveLetter(stripped)
	if !ok || !isSingleLetter(drive) {
		return &patherrors.ValidationError{
			Path:    path,
			Check:   "drive-letter",
			Message: fmt.Sprintf("want a single A-Z drive letter, got %q", drive),
		}
	}
	if local, ok := WindowsLocalPath(stripped); ok {
		return CheckFragment(local)
	}
	return nil
}

// CheckUNC reports whether path is a valid UNC network path in any
// recognized scheme. It returns nil when valid.
func CheckUNC(path string) error {
	stripped, _ := StripPrefix(path)
	if err := checkCommon(path, stripped); err != nil {
		return err
	}
	domain, ok := UNCDomainName(stripped)
	if !ok {
		return &patherrors.ValidationError{
			Path:    path,
			Check:   "domain-name",
			Message: "no leading double slash",
		}
	}
	if !netutil.IsValidDomainName(domain) {
		return &patherrors.ValidationError{
			Path:    path,
			Check:   "domain-name",
			Message: fmt.Sprintf("%q is not a legal domain name", domain),
		}
	}
	if drive, ok := UNCDriveLetter(stripped); ok && !isSingleLetter(drive) {
		return &patherrors.ValidationError{
			Path:    path,
			Check:   "drive-letter",
			Message: fmt.Sprintf("want a single A-Z drive letter in the share marker, got %q", drive),
		}
	}
	if local, ok := UNCLocalPath(stripped); ok {
		return CheckFragment(local)
	}
	return nil
}

// checkCommon applies the checks shared by both path types: slash
// consistency and overall length of the prefix-stripped text.
func checkCommon(path, stripped string) error {
	if slashutil.HasMixedSlashes(stripped) {
		return &patherrors.ValidationError{
			Path:    path,
			Check:   "mixed-slashes",
			Message: "path mixes backslashes and forward slashes",
		}
	}
	if len(stripped) > MaxPathLength {
		return &patherrors.ValidationError{
			Path:    path,
			Check:   "length",
			Message: fmt.Sprintf("path exceeds %d characters", MaxPathLength),
		}
	}
	return nil
}

// ClassifyType classifies path by running both structural validators.
// A path valid under both shapes is TypeAmbiguous; valid under neither,
// TypeUnknown.
func ClassifyType(path string) FilePathType {
	windows := CheckWindows(path) == nil
	unc := CheckUNC(path) == nil
	switch {
	case windows && unc:
		return TypeAmbiguous
	case windows:
		return TypeWindows
	case unc:
		return TypeUNC
	default:
		return TypeUnknown
	}
}

// isSingleLetter reports whether s is exactly one ASCII letter.
func isSingleLetter(s string) bool {
	return len(s) == 1 && isLetter(s[0])
}
