package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTool(t *testing.T) {
	input := convertInput{Text: "Hello World", Style: "snake"}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "snake", output.Style)
	assert.Equal(t, "hello_world", output.Result)
}

func TestConvertTool_DefaultStyle(t *testing.T) {
	input := convertInput{Text: "Hello World"}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "camel", output.Style)
	assert.Equal(t, "helloWorld", output.Result)
}

func TestConvertTool_All(t *testing.T) {
	input := convertInput{Text: "Hello World", All: true}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Len(t, output.All, 10)
	assert.Equal(t, "helloWorld", output.All["camel"])
	assert.Equal(t, "HELLO_WORLD", output.All["constant"])
	assert.Equal(t, "Hello-World", output.All["train"])
}

func TestConvertTool_UnknownStyle(t *testing.T) {
	input := convertInput{Text: "Hello World", Style: "screaming"}
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_OversizedText(t *testing.T) {
	input := convertInput{Text: strings.Repeat("a", cfg.MaxTextBytes+1), Style: "snake"}
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
