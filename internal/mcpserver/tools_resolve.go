package mcpserver

import (
	"context"

	"github.com/jmharte/winpathtools/resolver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type resolveInput struct {
	Path string `json:"path" jsonschema:"The path text to resolve"`
}

type resolveOutput struct {
	Path     string `json:"path"`
	Resolved string `json:"resolved"`
}

func handleResolve(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	out, err := resolver.Resolve(input.Path)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}
	return nil, resolveOutput{
		Path:     input.Path,
		Resolved: out,
	}, nil
}
