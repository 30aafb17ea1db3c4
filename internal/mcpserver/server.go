// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes case conversion, classification, and tokenization as MCP
// tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/calebmer/inflections"
	"github.com/calebmer/inflections/stylist"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `inflect MCP server — converts strings between case styles, classifies strings against styles, and splits strings into words.

Styles: camel, pascal, snake, kebab, train, constant, sentence, title, lower, upper.

Configuration: All defaults are configurable via INFLECT_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- INFLECT_DEFAULT_STYLE (default: camel) — style used when a tool omits 'style'
- INFLECT_MAX_TEXT_BYTES (default: 1048576) — maximum accepted input size

All three tools are pure and deterministic: the same input always yields the same output, and conversion itself never fails. Tool errors only arise from unknown style names or oversized input.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "inflect", Version: inflections.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert text to a target case style (camel, pascal, snake, kebab, train, constant, sentence, title, lower, upper). Use all=true to get the text rendered in every style at once. When style is omitted, the INFLECT_DEFAULT_STYLE setting applies.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify",
		Description: "Check which case styles text already conforms to. With a style argument, returns a single boolean; without one, returns every matching style. A style matches exactly when converting the text to that style leaves it unchanged.",
	}, handleClassify)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tokenize",
		Description: "Split text into its component words using the shared word-boundary rules: case transitions, letter/digit transitions, and separator characters. Useful for building custom naming schemes on top of the standard styles.",
	}, handleTokenize)
}

// checkText enforces the configured input size bound.
func checkText(text string) error {
	if len(text) > cfg.MaxTextBytes {
		return fmt.Errorf("text exceeds maximum size of %d bytes (got %d)", cfg.MaxTextBytes, len(text))
	}
	return nil
}

// resolveStyle maps a tool's optional style argument to a Style, falling
// back to the configured default when empty.
func resolveStyle(name string) (stylist.Style, error) {
	if name == "" {
		return cfg.DefaultStyle, nil
	}
	return stylist.ParseStyle(strings.TrimSpace(name))
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
