package mcpserver

import (
	"context"

	"github.com/jmharte/winpathtools/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type classifyInput struct {
	Path string `json:"path" jsonschema:"The path text to classify"`
}

type classifyOutput struct {
	Path   string `json:"path"`
	Type   string `json:"type"`
	Scheme string `json:"scheme"`
}

func handleClassify(_ context.Context, _ *mcp.CallToolRequest, input classifyInput) (*mcp.CallToolResult, classifyOutput, error) {
	result := parser.Parse(input.Path)
	return nil, classifyOutput{
		Path:   input.Path,
		Type:   string(result.Type),
		Scheme: string(result.Scheme),
	}, nil
}

type parseInput struct {
	Path string `json:"path" jsonschema:"The path text to parse"`
}

type parseOutput struct {
	Path          string   `json:"path"`
	Type          string   `json:"type"`
	Scheme        string   `json:"scheme"`
	DriveLetter   string   `json:"drive_letter,omitempty"`
	DomainName    string   `json:"domain_name,omitempty"`
	Delimiter     string   `json:"delimiter,omitempty"`
	Segments      []string `json:"segments,omitempty"`
	TrailingSlash bool     `json:"trailing_slash"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result := parser.Parse(input.Path)

	output := parseOutput{
		Path:   input.Path,
		Type:   string(result.Type),
		Scheme: string(result.Scheme),
	}
	switch obj := result.Object.(type) {
	case *parser.WindowsPath:
		output.DriveLetter = obj.DriveLetter
		output.Segments = obj.Segments
		output.TrailingSlash = obj.TrailingSlash
	case *parser.UNCPath:
		output.DomainName = obj.DomainName
		output.DriveLetter = obj.DriveLetter
		output.Segments = obj.Segments
		output.TrailingSlash = obj.TrailingSlash
	case *parser.UnknownPath:
		if obj.Delimiter != 0 {
			output.Delimiter = string(obj.Delimiter)
		}
		output.Segments = obj.Segments
		output.TrailingSlash = obj.TrailingSlash
	}
	return nil, output, nil
}
