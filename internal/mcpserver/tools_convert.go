package mcpserver

import (
	"context"
	"fmt"

	"github.com/jmharte/winpathtools/converter"
	"github.com/jmharte/winpathtools/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Path   string `json:"path"             jsonschema:"The path text to convert"`
	Type   string `json:"type,omitempty"   jsonschema:"Target path type (Windows\\, UNC\\, or Unknown). Omit to keep the parsed type."`
	Scheme string `json:"scheme,omitempty" jsonschema:"Target scheme (plain\\, file-uri\\, short-prefixed\\, or long-prefixed). Omit to keep the parsed scheme."`
}

type convertOutput struct {
	Path      string `json:"path"`
	Type      string `json:"type"`
	Scheme    string `json:"scheme,omitempty"`
	Formatted string `json:"formatted"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	var opts []converter.Option
	if input.Type != "" {
		targetType, err := lookupType(input.Type)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		opts = append(opts, converter.WithTargetType(targetType))
	}
	if input.Scheme != "" {
		targetScheme, err := lookupScheme(input.Scheme)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		opts = append(opts, converter.WithTargetScheme(targetScheme))
	}

	result, err := converter.ConvertWithOptions(input.Path, opts...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	return nil, convertOutput{
		Path:      input.Path,
		Type:      string(result.TargetType),
		Scheme:    string(result.TargetScheme),
		Formatted: result.Formatted,
	}, nil
}

func lookupType(name string) (parser.FilePathType, error) {
	switch parser.FilePathType(name) {
	case parser.TypeWindows, parser.TypeUNC, parser.TypeUnknown:
		return parser.FilePathType(name), nil
	default:
		return "", fmt.Errorf("invalid type %q; valid types: %s, %s, %s",
			name, parser.TypeWindows, parser.TypeUNC, parser.TypeUnknown)
	}
}

func lookupScheme(name string) (parser.Scheme, error) {
	switch parser.Scheme(name) {
	case parser.SchemePlain, parser.SchemeFileURI, parser.SchemeShortPrefixed, parser.SchemeLongPrefixed:
		return parser.Scheme(name), nil
	default:
		return "", fmt.Errorf("invalid scheme %q; valid schemes: %s, %s, %s, %s",
			name, parser.SchemePlain, parser.SchemeFileURI, parser.SchemeShortPrefixed, parser.SchemeLongPrefixed)
	}
}
