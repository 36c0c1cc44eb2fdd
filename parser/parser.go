package parser

import (
	"github.com/jmharte/winpathtools/internal/pathscan"
	"github.com/jmharte/winpathtools/internal/slashutil"
	"github.com/jmharte/winpathtools/patherrors"
)

// Result contains the structured representation of a parsed path.
type Result struct {
	// OriginalString is the input text, unmodified.
	OriginalString string
	// Type is the structural classification of the input.
	Type FilePathType
	// Scheme is the textual scheme of the input. SchemeUnknown when the
	// input matched no known wrapping.
	Scheme Scheme
	// Object is the tagged-union representation: *WindowsPath, *UNCPath,
	// or *UnknownPath. Ambiguous inputs are represented as *UnknownPath.
	Object Object
}

// Windows returns the Windows variant of the parsed object, or nil.
func (r *Result) Windows() *WindowsPath {
	obj, _ := r.Object.(*WindowsPath)
	return obj
}

// UNC returns the UNC variant of the parsed object, or nil.
func (r *Result) UNC() *UNCPath {
	obj, _ := r.Object.(*UNCPath)
	return obj
}

// Unknown returns the Unknown variant of the parsed object, or nil.
func (r *Result) Unknown() *UnknownPath {
	obj, _ := r.Object.(*UnknownPath)
	return obj
}

// Parser builds structured path representations from text.
//
// The zero value is ready to use. Parsing is a pure transformation over its
// input; a configured Parser is safe for concurrent use.
type Parser struct {
	// Logger receives diagnostic output. Defaults to NopLogger.
	Logger Logger
}

// New creates a new Parser.
func New() *Parser {
	return &Parser{Logger: NopLogger{}}
}

// Parse classifies path and builds its structured representation.
// Classification never fails: input of no recognized shape yields an
// *UnknownPath object rather than an error.
func (p *Parser) Parse(path string) *Result {
	logger := p.logger()

	pathType := pathscan.ClassifyType(path)
	scheme := pathscan.ClassifyScheme(path)
	stripped, _ := pathscan.StripPrefix(path)

	result := &Result{
		OriginalString: path,
		Type:           pathType,
		Scheme:         scheme,
	}

	// A known-shape path whose text matched no scheme mask (an all-forward-
	// slash UNC path, for instance) still needs a renderable scheme on its
	// object, or the formatter would reject what the validator accepted.
	objScheme := scheme
	if objScheme == SchemeUnknown {
		objScheme = SchemePlain
	}

	switch pathType {
	case TypeWindows:
		drive, _ := pathscan.WindowsDriveLetter(stripped)
		obj := &WindowsPath{Scheme: objScheme, DriveLetter: drive}
		if local, ok := pathscan.WindowsLocalPath(stripped); ok {
			obj.Segments = slashutil.Split(local)
			obj.TrailingSlash = slashutil.HasTrailingSlash(local)
		}
		result.Object = obj

	case TypeUNC:
		domain, _ := pathscan.UNCDomainName(stripped)
		obj := &UNCPath{Scheme: objScheme, DomainName: domain}
		if drive, ok := pathscan.UNCDriveLetter(stripped); ok {
			obj.DriveLetter = drive
		}
		if local, ok := pathscan.UNCLocalPath(stripped); ok {
			obj.Segments = slashutil.Split(local)
			obj.TrailingSlash = slashutil.HasTrailingSlash(local)
		}
		result.Object = obj

	default:
		// Unknown and Ambiguous are both kept as opaque token lists.
		obj := &UnknownPath{
			Raw:           path,
			Segments:      slashutil.Split(path),
			TrailingSlash: slashutil.HasTrailingSlash(path),
		}
		if delim, ok := slashutil.FirstDelimiter(path); ok {
			obj.Delimiter = delim
		}
		result.Object = obj
	}

	logger.Debug("parsed path", "path", path, "type", pathType, "scheme", scheme)
	return result
}

func (p *Parser) logger() Logger {
	if p.Logger == nil {
		return NopLogger{}
	}
	return p.Logger
}

// Parse classifies path and builds its structured representation using a
// default Parser.
func Parse(path string) *Result {
	return New().Parse(path)
}

// Option configures ParseWithOptions.
type Option func(*options)

type options struct {
	path   string
	hasSet bool
	logger Logger
}

// WithPath sets the path text to parse.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
		o.hasSet = true
	}
}

// WithLogger sets the logger used during parsing.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// ParseWithOptions parses using functional options. It returns a ConfigError
// when no input was provided via WithPath.
func ParseWithOptions(opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasSet {
		return nil, &patherrors.ConfigError{
			Option:  "WithPath",
			Message: "no path text provided",
		}
	}
	p := New()
	if o.logger != nil {
		p.Logger = o.logger
	}
	return p.Parse(o.path), nil
}
