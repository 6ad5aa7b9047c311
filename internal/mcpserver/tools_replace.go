package mcpserver

import (
	"context"

	"github.com/erraggy/recase/replacer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type replaceInput struct {
	Text        string `json:"text"        jsonschema:"The text to rewrite"`
	Needle      string `json:"needle"      jsonschema:"The identifier to search for in any casing convention"`
	Replacement string `json:"replacement" jsonschema:"The identifier to substitute. An empty replacement deletes the needle."`
}

type replaceVariant struct {
	Convention  string `json:"convention"`
	Needle      string `json:"needle"`
	Replacement string `json:"replacement"`
}

type replaceOutput struct {
	Result   string           `json:"result"`
	Count    int              `json:"count"`
	Literal  bool             `json:"literal"`
	Variants []replaceVariant `json:"variants,omitempty"`
}

func handleReplace(_ context.Context, _ *mcp.CallToolRequest, input replaceInput) (*mcp.CallToolResult, replaceOutput, error) {
	rep, err := replacer.New(input.Needle, input.Replacement)
	if err != nil {
		return errResult(err), replaceOutput{}, nil
	}

	result, count := rep.ReplaceCount(input.Text)
	output := replaceOutput{
		Result:  result,
		Count:   count,
		Literal: rep.Literal(),
	}

	variants := rep.Variants()
	output.Variants = makeSlice[replaceVariant](len(variants))
	for _, v := range variants {
		output.Variants = append(output.Variants, replaceVariant{
			Convention:  v.Convention.String(),
			Needle:      v.Needle,
			Replacement: v.Replacement,
		})
	}
	return nil, output, nil
}
