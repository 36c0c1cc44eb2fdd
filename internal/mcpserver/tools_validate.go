package mcpserver

import (
	"context"

	"github.com/jmharte/winpathtools/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateInput struct {
	Path string `json:"path" jsonschema:"The path text to validate"`
}

type validateOutput struct {
	Path          string `json:"path"`
	Type          string `json:"type"`
	Scheme        string `json:"scheme"`
	Valid         bool   `json:"valid"`
	WindowsValid  bool   `json:"windows_valid"`
	UNCValid      bool   `json:"unc_valid"`
	WindowsReason string `json:"windows_reason,omitempty"`
	UNCReason     string `json:"unc_reason,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	result := validator.Validate(input.Path)
	return nil, validateOutput{
		Path:          result.Path,
		Type:          string(result.Type),
		Scheme:        string(result.Scheme),
		Valid:         result.Valid,
		WindowsValid:  result.WindowsValid,
		UNCValid:      result.UNCValid,
		WindowsReason: result.WindowsReason,
		UNCReason:     result.UNCReason,
	}, nil
}
