package commands

import (
	"strings"

	"github.com/erraggy/recase/casing"
	"github.com/erraggy/recase/internal/cliutil"
	"github.com/spf13/cobra"
)

// Classification is one classified identifier.
type Classification struct {
	Value      string            `json:"value"            yaml:"value"`
	Convention casing.Convention `json:"convention"       yaml:"convention"`
	Tokens     []string          `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

func newClassifyCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "classify <value>...",
		Short: "Print the naming convention of each value",
		Example: `  recase classify fooBar FooBar foo_bar foo-bar
  recase classify --format json HTTPServer`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateOutputFormat(format); err != nil {
				return err
			}

			results := make([]Classification, 0, len(args))
			for _, v := range args {
				results = append(results, Classification{
					Value:      v,
					Convention: casing.Classify(v),
					Tokens:     casing.Tokenize(v),
				})
			}

			out := cmd.OutOrStdout()
			if format != FormatText {
				return OutputStructured(out, results, format)
			}
			for _, r := range results {
				cliutil.Writef(out, "%-24s %-12s %s\n", r.Value, r.Convention, strings.Join(r.Tokens, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", FormatText, "output format: text, json or yaml")
	return cmd
}
