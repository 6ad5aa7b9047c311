package commands

import (
	"github.com/erraggy/recase/internal/cliutil"
	"github.com/erraggy/recase/replacer"
	"github.com/spf13/cobra"
)

func newVariantsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "variants <needle> <replacement>",
		Short: "Print the needle/replacement pairs a run searches for",
		Long: `variants prints every surface form of the needle that a rename matches, next to
the replacement it is turned into. Nothing on disk is touched.`,
		Example:       `  recase variants fooBar bazQux`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateOutputFormat(format); err != nil {
				return err
			}
			rep, err := replacer.New(args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format != FormatText {
				return OutputStructured(out, rep.Variants(), format)
			}
			if rep.Literal() {
				cliutil.Writef(out, "Note: needle and replacement split into a different number of words; only the literal needle is replaced.\n")
			}
			for _, v := range rep.Variants() {
				cliutil.Writef(out, "%-12s %q -> %q\n", v.Convention, v.Needle, v.Replacement)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", FormatText, "output format: text, json or yaml")
	return cmd
}
