package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/recase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type classifyInput struct {
	Values []string `json:"values" jsonschema:"Identifiers to classify"`
}

type classification struct {
	Value      string   `json:"value"`
	Convention string   `json:"convention"`
	Tokens     []string `json:"tokens,omitempty"`
}

type classifyOutput struct {
	Results []classification `json:"results"`
}

func handleClassify(_ context.Context, _ *mcp.CallToolRequest, input classifyInput) (*mcp.CallToolResult, classifyOutput, error) {
	if len(input.Values) == 0 {
		return errResult(fmt.Errorf("at least one value must be provided")), classifyOutput{}, nil
	}

	output := classifyOutput{Results: make([]classification, 0, len(input.Values))}
	for _, v := range input.Values {
		output.Results = append(output.Results, classification{
			Value:      v,
			Convention: casing.Classify(v).String(),
			Tokens:     casing.Tokenize(v),
		})
	}
	return nil, output, nil
}
