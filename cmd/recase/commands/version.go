package commands

import (
	"github.com/erraggy/recase"
	"github.com/erraggy/recase/internal/cliutil"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the recase version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cliutil.Writef(cmd.OutOrStdout(), "recase v%s\n", recase.Version())
		},
	}
}
