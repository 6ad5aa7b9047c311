package commands

import (
	"log/slog"

	"github.com/erraggy/recase"
	"github.com/erraggy/recase/internal/mcpserver"
	"github.com/spf13/cobra"
)

func newMCPCommand(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the classify, replace and rename tools over MCP (stdio)",
		Long: `mcp starts a Model Context Protocol server on stdin/stdout. Logs go to stderr.

Environment:
  RECASE_MCP_READ_ONLY     force dry_run on every rename call (default false)
  RECASE_MCP_ACTION_LIMIT  default number of actions returned by rename (default 100)
  RECASE_MCP_MAX_LIMIT     upper bound for an explicit limit (default 1000)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// stdout carries the protocol.
			logger := NewLogger(cmd.ErrOrStderr(), *verbose)
			slog.SetDefault(logger)
			logger.Debug("starting MCP server", "agent", recase.UserAgent())
			return mcpserver.Run(cmd.Context())
		},
	}
}
