package mcpserver

import (
	"errors"
	"strings"
	"testing"

	"github.com/calebmer/inflections"
	"github.com/calebmer/inflections/stylist"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAllTools(t *testing.T) {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "inflect", Version: inflections.Version()},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)

	// Registration must not panic and the server must be usable afterwards.
	require.NotPanics(t, func() { registerAllTools(server) })
}

func TestServerInstructions_MentionEveryStyle(t *testing.T) {
	for _, s := range stylist.Styles() {
		assert.True(t, strings.Contains(serverInstructions, s.String()),
			"instructions should mention style %q", s)
	}
}

func TestCheckText(t *testing.T) {
	assert.NoError(t, checkText(""))
	assert.NoError(t, checkText("hello"))
	assert.Error(t, checkText(strings.Repeat("x", cfg.MaxTextBytes+1)))
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom"))
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "boom", text.Text)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[string](3)
	assert.NotNil(t, s)
	assert.Len(t, s, 0)
	assert.Equal(t, 3, cap(s))
}
