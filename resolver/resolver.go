// Package resolver eliminates "." and ".." segments from paths.
//
// Resolution is purely lexical: "." segments are dropped, ".." segments pop
// the segment before them, and a ".." with nothing left to pop fails with a
// [patherrors.ResolutionError]. No filesystem is consulted.
//
// # Quick Start
//
//	out, err := resolver.Resolve(`c:\logs\..\data\.\sets`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // c:\data\sets
package resolver

import (
	"strings"

	"github.com/jmharte/winpathtools/formatter"
	"github.com/jmharte/winpathtools/parser"
	"github.com/jmharte/winpathtools/patherrors"
)

// Resolver eliminates "." and ".." segments.
//
// The zero value is ready to use. A configured Resolver is safe for
// concurrent use.
type Resolver struct {
	// Logger receives diagnostic output. Defaults to parser.NopLogger.
	Logger parser.Logger
}

// New creates a new Resolver.
func New() *Resolver {
	return &Resolver{Logger: parser.NopLogger{}}
}

// ResolveSegments resolves a pre-split segment list. It returns the
// surviving segments in order; resolving away every segment yields an
// empty list, not an error.
func (r *Resolver) ResolveSegments(segments []string) ([]string, error) {
	return r.resolve(strings.Join(segments, `\`), segments)
}

func (r *Resolver) resolve(path string, segments []string) ([]string, error) {
	resolved := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch segment {
		case ".":
			// no-op
		case "..":
			if len(resolved) == 0 {
				return nil, &patherrors.ResolutionError{
					Path:    path,
					Message: `".." has no parent segment to remove`,
				}
			}
			resolved = resolved[:len(resolved)-1]
		default:
			resolved = append(resolved, segment)
		}
	}
	return resolved, nil
}

// Resolve parses path, resolves its local segments, and renders the result
// in the same type and scheme. The drive letter, domain name, and trailing
// slash survive untouched; only the segment list changes.
func (r *Resolver) Resolve(path string) (string, error) {
	result := parser.Parse(path)

	switch obj := result.Object.(type) {
	case *parser.WindowsPath:
		resolved, err := r.resolve(path, obj.Segments)
		if err != nil {
			return "", err
		}
		obj.Segments = resolved
	case *parser.UNCPath:
		resolved, err := r.resolve(path, obj.Segments)
		if err != nil {
			return "", err
		}
		obj.Segments = resolved
	case *parser.UnknownPath:
		resolved, err := r.resolve(path, obj.Segments)
		if err != nil {
			return "", err
		}
		obj.Segments = resolved
		if obj.Delimiter == 0 {
			obj.Delimiter = '\\'
		}
	}

	out, err := formatter.Format(result.Object)
	if err != nil {
		return "", err
	}
	r.logger().Debug("resolved path", "path", path, "result", out)
	return out, nil
}

func (r *Resolver) logger() parser.Logger {
	if r.Logger == nil {
		return parser.NopLogger{}
	}
	return r.Logger
}

// ResolveSegments resolves a pre-split segment list using a default
// Resolver.
func ResolveSegments(segments []string) ([]string, error) {
	return New().ResolveSegments(segments)
}

// Resolve parses, resolves, and re-renders path using a default Resolver.
func Resolve(path string) (string, error) {
	return New().Resolve(path)
}
