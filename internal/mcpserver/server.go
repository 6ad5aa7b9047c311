// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes recase capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/recase"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `recase MCP server: classifies identifier casing, performs case-preserving replacement on text, and renames directory trees.

A needle such as fooBar also matches FooBar, foo_bar and foo-bar; each match is replaced by the replacement rendered in the same convention. When needle and replacement split into different numbers of words only the literal needle is replaced.

Configuration: defaults are configurable via RECASE_MCP_* environment variables set in your MCP client config.

Key settings:
- RECASE_MCP_READ_ONLY (default: false): force dry_run on every rename call
- RECASE_MCP_ACTION_LIMIT (default: 100): default number of actions returned by rename
- RECASE_MCP_MAX_LIMIT (default: 1000): upper bound for an explicit limit

Always call rename with dry_run=true first and review the planned actions.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "recase", Version: recase.Version()},
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
		Description: "Classify the naming convention of one or more identifiers. Returns camelCase, PascalCase, snake_case, kebab-case or literal for each value along with the words it splits into.",
	}, handleClassify)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "replace",
		Description: "Perform a case-preserving replacement on a piece of text. Every casing variant of the needle is replaced by the replacement rendered in the same convention. Returns the rewritten text, the number of substitutions and the variants that were searched for.",
	}, handleReplace)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename",
		Description: "Rename files and directories under a directory whose names contain a casing variant of the needle. With files=true the contents of text files are rewritten too. Use dry_run=true to preview the planned actions. Paths in the output are relative to the directory. Use offset/limit to paginate through actions. Set RECASE_MCP_READ_ONLY=true to force dry runs.",
	}, handleRename)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ActionLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ActionLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
