package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeTool(t *testing.T) {
	input := tokenizeInput{Text: "HTTPServer2Go"}
	result, output, err := handleTokenize(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, 4, output.Count)
	assert.Equal(t, []string{"HTTP", "Server", "2", "Go"}, output.Words)
}

func TestTokenizeTool_Empty(t *testing.T) {
	input := tokenizeInput{Text: ""}
	result, output, err := handleTokenize(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Zero(t, output.Count)
	assert.Empty(t, output.Words)
}

func TestTokenizeTool_PureSeparators(t *testing.T) {
	input := tokenizeInput{Text: "--- __ !!"}
	result, output, err := handleTokenize(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Zero(t, output.Count)
	assert.Empty(t, output.Words)
}
