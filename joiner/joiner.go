// Package joiner concatenates path fragments into a single path.
//
// The first fragment is parsed and fixes everything structural: the path
// type, the scheme, the drive letter or domain name, and the delimiter the
// result is rendered with. A first fragment of unrecognized shape is kept
// opaque as a single segment, so tokens meant for later substitution pass
// through untouched. Subsequent fragments only contribute segments;
// their own slash style is irrelevant except that the last fragment decides
// whether the result carries a trailing slash.
//
// Joining is purely textual. Segments are not validated as file names; use
// the validator package on the result when that matters.
//
// # Quick Start
//
//	result, err := joiner.Join(`c:\logs`, "app", `2026\`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Formatted) // c:\logs\app\2026\
package joiner

import (
	"strings"

	"github.com/jmharte/winpathtools/formatter"
	"github.com/jmharte/winpathtools/internal/slashutil"
	"github.com/jmharte/winpathtools/parser"
	"github.com/jmharte/winpathtools/patherrors"
)

// Result contains the outcome of one join.
type Result struct {
	// Formatted is the joined path text.
	Formatted string
	// Type is the path type fixed by the first fragment.
	Type parser.FilePathType
	// Scheme is the scheme fixed by the first fragment.
	Scheme parser.Scheme
	// Segments is the combined local segment list.
	Segments []string
	// TrailingSlash reports whether the result ends in a slash.
	TrailingSlash bool
}

// Joiner concatenates path fragments.
//
// The zero value is ready to use. A configured Joiner is safe for
// concurrent use.
type Joiner struct {
	// Logger receives diagnostic output. Defaults to parser.NopLogger.
	Logger parser.Logger
}

// New creates a new Joiner.
func New() *Joiner {
	return &Joiner{Logger: parser.NopLogger{}}
}

// Join parses the first fragment and appends the segments of the remaining
// fragments to it.
//
// It fails with a *patherrors.ArgumentError when no fragments are given or
// the first fragment is empty. Empty subsequent fragments contribute no
// segments, but the last fragment always decides the trailing slash.
func (j *Joiner) Join(fragments ...string) (*Result, error) {
	if len(fragments) == 0 {
		return nil, &patherrors.ArgumentError{
			Field:   "fragments",
			Message: "at least one fragment is required",
		}
	}
	if fragments[0] == "" {
		return nil, &patherrors.ArgumentError{
			Field:   "fragments",
			Message: "the first fragment must not be empty",
		}
	}

	base := parser.Parse(fragments[0])
	var extra []string
	for _, fragment := range fragments[1:] {
		if fragment == "" {
			continue
		}
		extra = append(extra, slashutil.Split(fragment)...)
	}
	// The literal last fragment decides the trailing slash, even when empty.
	trailing := slashutil.HasTrailingSlash(fragments[len(fragments)-1])

	var segments []string
	switch obj := base.Object.(type) {
	case *parser.WindowsPath:
		obj.Segments = append(obj.Segments, extra...)
		obj.TrailingSlash = trailing
		segments = obj.Segments
	case *parser.UNCPath:
		obj.Segments = append(obj.Segments, extra...)
		obj.TrailingSlash = trailing
		segments = obj.Segments
	case *parser.UnknownPath:
		if obj.Delimiter == 0 {
			obj.Delimiter = '\\'
		}
		// An unrecognized first fragment stays opaque: its raw text is the
		// sole initial segment, never re-split.
		obj.Segments = nil
		if raw := strings.TrimRight(obj.Raw, `\/`); raw != "" {
			obj.Segments = []string{raw}
		}
		obj.Segments = append(obj.Segments, extra...)
		obj.TrailingSlash = trailing
		segments = obj.Segments
	}

	formatted, err := formatter.Format(base.Object)
	if err != nil {
		return nil, err
	}
	j.logger().Debug("joined fragments",
		"count", len(fragments), "type", base.Type, "result", formatted)

	return &Result{
		Formatted:     formatted,
		Type:          base.Type,
		Scheme:        base.Scheme,
		Segments:      segments,
		TrailingSlash: trailing,
	}, nil
}

func (j *Joiner) logger() parser.Logger {
	if j.Logger == nil {
		return parser.NopLogger{}
	}
	return j.Logger
}

// Join concatenates fragments using a default Joiner.
func Join(fragments ...string) (*Result, error) {
	return New().Join(fragments...)
}

// Option configures JoinWithOptions.
type Option func(*options)

type options struct {
	fragments []string
	logger    parser.Logger
}

// WithFragments appends fragments to join, in order.
func WithFragments(fragments ...string) Option {
	return func(o *options) {
		o.fragments = append(o.fragments, fragments...)
	}
}

// WithLogger sets the logger used during joining.
func WithLogger(logger parser.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// JoinWithOptions joins using functional options. It returns a ConfigError
// when no fragments were provided via WithFragments.
func JoinWithOptions(opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.fragments) == 0 {
		return nil, &patherrors.ConfigError{
			Option:  "WithFragments",
			Message: "no fragments provided",
		}
	}
	j := New()
	if o.logger != nil {
		j.Logger = o.logger
	}
	return j.Join(o.fragments...)
}
