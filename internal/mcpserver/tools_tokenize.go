package mcpserver

import (
	"context"

	"github.com/calebmer/inflections/tokenizer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type tokenizeInput struct {
	Text string `json:"text" jsonschema:"The text to split into words"`
}

type tokenizeOutput struct {
	Count int      `json:"count"`
	Words []string `json:"words,omitempty"`
}

func handleTokenize(_ context.Context, _ *mcp.CallToolRequest, input tokenizeInput) (*mcp.CallToolResult, tokenizeOutput, error) {
	if err := checkText(input.Text); err != nil {
		return errResult(err), tokenizeOutput{}, nil
	}

	words := tokenizer.Tokenize(input.Text)
	return nil, tokenizeOutput{Count: len(words), Words: words}, nil
}
