// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes winpathtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/jmharte/winpathtools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `winpathtools MCP server — classifies, parses, validates, formats, converts, joins, and resolves Windows and UNC path text.

All tools are purely textual: no filesystem is consulted and no path is required to exist. Paths may be wrapped in any of the recognized schemes (plain, file:// URI, FileSystem:: prefix, Microsoft.PowerShell.Core\FileSystem:: prefix); classification and validation see through the wrapping.

Start with classify to learn what shape a path has, validate to learn why a path is rejected, and convert to move between shapes and schemes.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "winpathtools", Version: winpathtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify",
		Description: "Classify path text as a Windows drive-letter path, a UNC network path, or unknown, and report its textual scheme (plain, file-uri, short-prefixed, long-prefixed). Purely textual; the path need not exist.",
	}, handleClassify)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse path text into its structural parts: type, scheme, drive letter, domain name, local segments, and trailing slash. Parsing never fails; unrecognized text is returned as an opaque token list.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate path text against the Windows and UNC shapes and report why each shape rejected it. Checks slash consistency, drive letters, domain names, reserved DOS device names (CON, PRN, AUX, NUL, COM1-9, LPT1-9), illegal characters, and length limits.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format",
		Description: "Render path text from structural fields: type, scheme, drive letter, domain name, segments, and trailing slash. The inverse of parse. Fails on incomplete field combinations (UNC needs a domain name, Windows needs a drive letter).",
	}, handleFormat)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Re-render path text as another type and/or scheme, e.g. localize \\\\host\\c$\\dir to c:\\dir or render a plain path as a file:// URI. Fails when the target type needs a part the source does not carry (UNC needs a domain name, Windows needs a drive letter).",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "join",
		Description: "Concatenate path fragments. The first fragment fixes the type, scheme, and delimiter; later fragments contribute segments regardless of their own slash style; the last fragment decides the trailing slash. Segments are not validated as file names.",
	}, handleJoin)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Lexically eliminate \".\" and \"..\" segments from path text. Fails when a \"..\" has no parent segment left to remove. No filesystem is consulted.",
	}, handleResolve)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
