package mcpserver

import (
	"context"
	"fmt"

	"github.com/jmharte/winpathtools/formatter"
	"github.com/jmharte/winpathtools/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type formatInput struct {
	Type          string   `json:"type"                     jsonschema:"Path type to render (Windows\\, UNC\\, or Unknown)"`
	Scheme        string   `json:"scheme,omitempty"         jsonschema:"Scheme to render in (plain\\, file-uri\\, short-prefixed\\, or long-prefixed). Defaults to plain. Not allowed for Unknown."`
	DriveLetter   string   `json:"drive_letter,omitempty"   jsonschema:"Drive letter without the colon. Required for Windows; optional share marker for UNC."`
	DomainName    string   `json:"domain_name,omitempty"    jsonschema:"Domain or host name. Required for UNC."`
	Delimiter     string   `json:"delimiter,omitempty"      jsonschema:"Single delimiter character for Unknown paths. Defaults to a backslash."`
	Segments      []string `json:"segments,omitempty"       jsonschema:"Local path segments\\, in order"`
	TrailingSlash bool     `json:"trailing_slash,omitempty" jsonschema:"Whether the rendered path ends in a slash"`
}

type formatOutput struct {
	Formatted string `json:"formatted"`
}

func handleFormat(_ context.Context, _ *mcp.CallToolRequest, input formatInput) (*mcp.CallToolResult, formatOutput, error) {
	obj, err := buildFormatObject(input)
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}
	formatted, err := formatter.Format(obj)
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}
	return nil, formatOutput{Formatted: formatted}, nil
}

// buildFormatObject assembles the path object described by the input fields.
func buildFormatObject(input formatInput) (parser.Object, error) {
	var scheme parser.Scheme
	if input.Scheme != "" {
		var err error
		scheme, err = lookupScheme(input.Scheme)
		if err != nil {
			return nil, err
		}
	}

	switch parser.FilePathType(input.Type) {
	case parser.TypeWindows:
		return &parser.WindowsPath{
			Scheme:        scheme,
			DriveLetter:   input.DriveLetter,
			Segments:      input.Segments,
			TrailingSlash: input.TrailingSlash,
		}, nil
	case parser.TypeUNC:
		return &parser.UNCPath{
			Scheme:        scheme,
			DomainName:    input.DomainName,
			DriveLetter:   input.DriveLetter,
			Segments:      input.Segments,
			TrailingSlash: input.TrailingSlash,
		}, nil
	case parser.TypeUnknown:
		if input.Scheme != "" {
			return nil, fmt.Errorf("Unknown paths carry a delimiter, not a scheme")
		}
		delimiter := byte('\\')
		if input.Delimiter != "" {
			if len(input.Delimiter) != 1 {
				return nil, fmt.Errorf("delimiter must be a single character, got %q", input.Delimiter)
			}
			delimiter = input.Delimiter[0]
		}
		return &parser.UnknownPath{
			Delimiter:     delimiter,
			Segments:      input.Segments,
			TrailingSlash: input.TrailingSlash,
		}, nil
	default:
		return nil, fmt.Errorf("invalid type %q; valid types: %s, %s, %s",
			input.Type, parser.TypeWindows, parser.TypeUNC, parser.TypeUnknown)
	}
}
