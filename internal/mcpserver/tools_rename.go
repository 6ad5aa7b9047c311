package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/erraggy/recase/renamer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type renameInput struct {
	Directory         string   `json:"directory"                    jsonschema:"Root directory to process. The root itself is never renamed."`
	Needle            string   `json:"needle"                       jsonschema:"The identifier to search for in any casing convention"`
	Replacement       string   `json:"replacement"                  jsonschema:"The identifier to substitute. An empty replacement deletes the needle."`
	Files             bool     `json:"files,omitempty"              jsonschema:"Also rewrite the contents of text files"`
	DryRun            bool     `json:"dry_run,omitempty"            jsonschema:"Report planned actions without changing anything"`
	ExcludeDirs       []string `json:"exclude_dirs,omitempty"       jsonschema:"Directory names or globs to skip. Defaults to .git when omitted."`
	ExcludeExtensions []string `json:"exclude_extensions,omitempty" jsonschema:"File extensions or globs to skip such as png or *.min.js"`
	Offset            int      `json:"offset,omitempty"             jsonschema:"Skip the first N actions (for pagination)"`
	Limit             int      `json:"limit,omitempty"              jsonschema:"Maximum number of actions to return (default 100)"`
}

type renameAction struct {
	Type        string `json:"type"`
	Path        string `json:"path"`
	Target      string `json:"target,omitempty"`
	IsDir       bool   `json:"is_dir,omitempty"`
	Occurrences int    `json:"occurrences,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Applied     bool   `json:"applied"`
}

type renameOutput struct {
	DryRun          bool           `json:"dry_run"`
	LiteralFallback bool           `json:"literal_fallback"`
	Renames         int            `json:"renames"`
	Rewrites        int            `json:"rewrites"`
	Skipped         int            `json:"skipped"`
	Errors          int            `json:"errors"`
	ActionCount     int            `json:"action_count"`
	Returned        int            `json:"returned"`
	Actions         []renameAction `json:"actions,omitempty"`
}

// defaultExcludeDirs applies when the caller gives no directory exclusions.
var defaultExcludeDirs = []string{".git"}

func handleRename(_ context.Context, _ *mcp.CallToolRequest, input renameInput) (*mcp.CallToolResult, renameOutput, error) {
	if input.Directory == "" {
		return errResult(fmt.Errorf("directory must be provided")), renameOutput{}, nil
	}

	excludeDirs := input.ExcludeDirs
	if excludeDirs == nil {
		excludeDirs = defaultExcludeDirs
	}

	result, err := renamer.RunWithOptions(
		renamer.WithRoot(input.Directory),
		renamer.WithNeedle(input.Needle),
		renamer.WithReplacement(input.Replacement),
		renamer.WithIncludeContents(input.Files),
		renamer.WithDryRun(input.DryRun || cfg.ReadOnly),
		renamer.WithExcludedDirs(excludeDirs...),
		renamer.WithExcludedExtensions(input.ExcludeExtensions...),
	)
	if err != nil {
		return errResult(err), renameOutput{}, nil
	}

	output := renameOutput{
		DryRun:          result.DryRun,
		LiteralFallback: result.LiteralFallback,
		Renames:         result.Summary.Renames,
		Rewrites:        result.Summary.Rewrites,
		Skipped:         result.Summary.Skipped,
		Errors:          result.Summary.Errors,
		ActionCount:     len(result.Actions),
	}

	output.Actions = makeSlice[renameAction](len(result.Actions))
	for _, a := range result.Actions {
		ra := renameAction{
			Type:        string(a.Type),
			Path:        relativeTo(result.Root, a.Path),
			IsDir:       a.IsDir,
			Occurrences: a.Occurrences,
			Applied:     a.Applied,
		}
		if a.Target != "" {
			ra.Target = relativeTo(result.Root, a.Target)
		}
		if a.Err != nil {
			ra.Reason = sanitizeError(a.Err)
		} else {
			ra.Reason = a.Reason
		}
		output.Actions = append(output.Actions, ra)
	}

	output.Actions = paginate(output.Actions, input.Offset, input.Limit)
	output.Returned = len(output.Actions)

	return nil, output, nil
}

// relativeTo returns p relative to root with forward slashes, so that tool
// output never carries absolute paths.
func relativeTo(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return filepath.Base(p)
	}
	return filepath.ToSlash(rel)
}
