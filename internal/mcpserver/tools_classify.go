package mcpserver

import (
	"context"

	"github.com/calebmer/inflections/stylist"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type classifyInput struct {
	Text  string `json:"text"            jsonschema:"The text to classify"`
	Style string `json:"style,omitempty" jsonschema:"Case style to check against. When omitted\\, every matching style is returned."`
}

type classifyOutput struct {
	Style   string   `json:"style,omitempty"`
	Matches *bool    `json:"matches,omitempty"`
	Styles  []string `json:"styles,omitempty"`
}

func handleClassify(_ context.Context, _ *mcp.CallToolRequest, input classifyInput) (*mcp.CallToolResult, classifyOutput, error) {
	if err := checkText(input.Text); err != nil {
		return errResult(err), classifyOutput{}, nil
	}

	if input.Style != "" {
		style, err := stylist.ParseStyle(input.Style)
		if err != nil {
			return errResult(err), classifyOutput{}, nil
		}
		matches := style.Matches(input.Text)
		return nil, classifyOutput{Style: style.String(), Matches: &matches}, nil
	}

	matched := stylist.MatchingStyles(input.Text)
	names := makeSlice[string](len(matched))
	for _, s := range matched {
		names = append(names, s.String())
	}
	return nil, classifyOutput{Styles: names}, nil
}
