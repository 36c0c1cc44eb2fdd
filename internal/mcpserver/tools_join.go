package mcpserver

import (
	"context"
	"fmt"

	"github.com/jmharte/winpathtools/joiner"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type joinInput struct {
	Fragments []string `json:"fragments" jsonschema:"The path fragments to join\\, in order. The first fragment fixes the structure."`
}

type joinOutput struct {
	Formatted     string   `json:"formatted"`
	Type          string   `json:"type"`
	Scheme        string   `json:"scheme"`
	Segments      []string `json:"segments,omitempty"`
	TrailingSlash bool     `json:"trailing_slash"`
}

func handleJoin(_ context.Context, _ *mcp.CallToolRequest, input joinInput) (*mcp.CallToolResult, joinOutput, error) {
	if len(input.Fragments) == 0 {
		return errResult(fmt.Errorf("at least one fragment is required")), joinOutput{}, nil
	}

	result, err := joiner.Join(input.Fragments...)
	if err != nil {
		return errResult(err), joinOutput{}, nil
	}
	return nil, joinOutput{
		Formatted:     result.Formatted,
		Type:          string(result.Type),
		Scheme:        string(result.Scheme),
		Segments:      result.Segments,
		TrailingSlash: result.TrailingSlash,
	}, nil
}
