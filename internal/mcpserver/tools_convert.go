package mcpserver

import (
	"context"

	"github.com/calebmer/inflections/stylist"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Text  string `json:"text"            jsonschema:"The text to convert"`
	Style string `json:"style,omitempty" jsonschema:"Target case style (camel\\, pascal\\, snake\\, kebab\\, train\\, constant\\, sentence\\, title\\, lower\\, upper). Defaults to INFLECT_DEFAULT_STYLE."`
	All   bool   `json:"all,omitempty"   jsonschema:"Render the text in every style instead of one"`
}

type convertOutput struct {
	Style  string            `json:"style,omitempty"`
	Result string            `json:"result,omitempty"`
	All    map[string]string `json:"all,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if err := checkText(input.Text); err != nil {
		return errResult(err), convertOutput{}, nil
	}

	if input.All {
		all := make(map[string]string, len(stylist.Styles()))
		for _, s := range stylist.Styles() {
			all[s.String()] = s.Convert(input.Text)
		}
		return nil, convertOutput{All: all}, nil
	}

	style, err := resolveStyle(input.Style)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	return nil, convertOutput{
		Style:  style.String(),
		Result: style.Convert(input.Text),
	}, nil
}
