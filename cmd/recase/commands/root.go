package commands

import (
	"context"
	"os"
	"slices"

	"github.com/erraggy/recase/internal/cliutil"
	"github.com/spf13/cobra"
)

// Execute runs the recase command line and returns the process exit code.
func Execute(ctx context.Context) int {
	cmd := NewRootCommand()
	cmd.SetArgs(DirectoryArgs(cmd, os.Args[1:]))
	if err := cmd.ExecuteContext(ctx); err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the recase command tree. The root command performs
// the rename; classify, variants, mcp and version are subcommands.
func NewRootCommand() *cobra.Command {
	flags := &RenameFlags{}

	cmd := &cobra.Command{
		Use:   "recase [flags] <directory> [needle replacement]",
		Short: "Case-preserving rename of files, directories and their contents",
		Long: `recase renames every file and directory below <directory> whose name contains
the needle in any casing convention, keeping the convention of each match:

  fooBar -> bazQux    FooBar -> BazQux    foo_bar -> baz_qux    foo-bar -> baz-qux

With --files the contents of text files are rewritten the same way. Binary files
are never rewritten. Existing paths are never overwritten: a rename whose target
exists is reported and skipped.

The needle and replacement may be given positionally or with -n/-r. An empty
replacement (-r "") deletes the needle after an extra confirmation.

A directory named like a subcommand (classify, variants, mcp, version) is
renamed when a needle and replacement follow it. Write ./<name> to force it.

Settings are read from --config, or from <directory>/.recase.yaml when present.
Flags given on the command line override the file.`,
		Example: `  recase --dry-run ./src fooBar bazQux
  recase -f -y ./src old_name new_name
  recase -n userId -r accountId --exclude-dirs .git,node_modules ./web
  recase -d --format json ./src fooBar bazQux`,
		Args:          cobra.RangeArgs(1, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Needle, "needle", "n", "", "needle to search for (alternative to positional)")
	f.StringVarP(&flags.Replacement, "replacement", "r", "", "replacement (alternative to positional)")
	f.BoolVarP(&flags.Files, "files", "f", false, "also rewrite text file contents")
	f.BoolVarP(&flags.DryRun, "dry-run", "d", false, "print intended actions without changing anything")
	f.BoolVarP(&flags.Yes, "yes", "y", false, "do not ask for confirmation")
	f.StringSliceVar(&flags.ExcludeDirs, "exclude-dirs", slices.Clone(DefaultExcludeDirs), "directory names or globs to skip; setting it replaces the .git default")
	f.StringSliceVar(&flags.ExcludeExtensions, "exclude-extensions", nil, "file extensions or globs to skip")
	f.StringVar(&flags.ConfigPath, "config", "", "YAML config file (default <directory>/.recase.yaml if present)")
	f.StringVar(&flags.Format, "format", FormatText, "output format: text, json or yaml")
	f.BoolVar(&flags.Progress, "progress", false, "show a progress bar on stderr")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "debug logging on stderr")

	cmd.AddCommand(
		newClassifyCommand(),
		newVariantsCommand(),
		newMCPCommand(&flags.Verbose),
		newVersionCommand(),
	)
	return cmd
}
