package commands

import (
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/erraggy/recase"
	"github.com/erraggy/recase/internal/cliutil"
	"github.com/erraggy/recase/internal/config"
	"github.com/erraggy/recase/internal/fileutil"
	"github.com/erraggy/recase/internal/options"
	"github.com/erraggy/recase/recaseerrors"
	"github.com/erraggy/recase/renamer"
	"github.com/spf13/cobra"
)

// DefaultExcludeDirs are skipped unless --exclude-dirs or a config file says
// otherwise.
var DefaultExcludeDirs = []string{".git"}

// RenameFlags contains flags for the root rename command
type RenameFlags struct {
	Needle            string
	Replacement       string
	Files             bool
	DryRun            bool
	Yes               bool
	ExcludeDirs       []string
	ExcludeExtensions []string
	ConfigPath        string
	Format            string
	Progress          bool
	Verbose           bool
}

func runRename(cmd *cobra.Command, args []string, flags *RenameFlags) error {
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	dir := &options.Argument{Name: "directory"}
	needle := &options.Argument{Name: "needle", Value: flags.Needle, Set: cmd.Flags().Changed("needle")}
	replacement := &options.Argument{Name: "replacement", Value: flags.Replacement, Set: cmd.Flags().Changed("replacement")}
	if err := options.FillPositional(args, dir, needle, replacement); err != nil {
		return err
	}
	if err := options.RequireSet(dir, needle, replacement); err != nil {
		return err
	}
	if needle.Value == "" {
		return &recaseerrors.ConfigError{Option: "needle", Message: "needle cannot be empty"}
	}

	cfg, err := buildConfig(cmd, flags, dir.Value)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	logger := NewLogger(stderr, flags.Verbose)

	r := renamer.New(cfg)
	r.Logger = logger

	if !cfg.DryRun {
		// Plan first so that a run with nothing to change does not prompt.
		r.Config.DryRun = true
		plan, err := r.Run(dir.Value, needle.Value, replacement.Value)
		if err != nil {
			return err
		}
		r.Config.DryRun = false

		if plan.Summary.Renames+plan.Summary.Rewrites == 0 {
			plan.DryRun = false
			return writeResult(out, flags.Format, plan, cfg)
		}
		if !flags.Yes && !confirmRun(cmd, cfg, replacement.Value) {
			cliutil.Writef(out, "Operation cancelled.\n")
			return nil
		}
	}

	if flags.Progress {
		r.Observer = newProgressObserver(stderr)
	}
	result, err := r.Run(dir.Value, needle.Value, replacement.Value)
	if err != nil {
		return err
	}
	return writeResult(out, flags.Format, result, cfg)
}

// buildConfig layers defaults, the config file and explicitly set flags, in
// that order.
func buildConfig(cmd *cobra.Command, flags *RenameFlags, directory string) (renamer.Config, error) {
	cfg := renamer.Config{ExcludedDirs: slices.Clone(DefaultExcludeDirs)}

	path := flags.ConfigPath
	if path == "" {
		if candidate := filepath.Join(directory, config.DefaultFileName); fileutil.Exists(candidate) {
			path = candidate
		}
	}
	if path != "" {
		file, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		file.Apply(&cfg)
	}

	changed := cmd.Flags().Changed
	if changed("exclude-dirs") {
		cfg.ExcludedDirs = flags.ExcludeDirs
	}
	if changed("exclude-extensions") {
		cfg.ExcludedExtensions = flags.ExcludeExtensions
	}
	if changed("files") {
		cfg.IncludeContents = flags.Files
	}
	cfg.DryRun = flags.DryRun
	return cfg, nil
}

// confirmRun asks before a run that changes the filesystem. An empty
// replacement asks a second time.
func confirmRun(cmd *cobra.Command, cfg renamer.Config, replacement string) bool {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()

	question := "Are you sure you want to rename files? This action cannot be undone."
	if cfg.IncludeContents {
		question = "Are you sure you want to rename files and replace inside them? This action cannot be undone."
	}
	if !cliutil.Confirm(in, out, question) {
		return false
	}
	if replacement == "" {
		return cliutil.Confirm(in, out, "The replacement string is empty. This will remove the needle from names and contents. Are you sure you want to continue?")
	}
	return true
}

func writeResult(w io.Writer, format string, result *renamer.Result, cfg renamer.Config) error {
	if format != FormatText {
		return OutputStructured(w, result, format)
	}
	writeReport(w, result, cfg)
	return nil
}

// writeReport prints the text report: header, one line per action, summary.
func writeReport(w io.Writer, result *renamer.Result, cfg renamer.Config) {
	cliutil.Writef(w, "recase v%s\n", recase.Version())
	cliutil.Writef(w, "Directory: %s\n", result.Root)
	cliutil.Writef(w, "Needle: %q\n", result.Needle)
	cliutil.Writef(w, "Replacement: %q\n", result.Replacement)
	cliutil.Writef(w, "Excluded dirs: %s\n", listOrNone(cfg.ExcludedDirs))
	cliutil.Writef(w, "Excluded extensions: %s\n", listOrNone(cfg.ExcludedExtensions))
	cliutil.Writef(w, "Contents: %s\n", yesNo(result.IncludeContents))
	cliutil.Writef(w, "Dry run: %s\n", yesNo(result.DryRun))
	if result.LiteralFallback {
		cliutil.Writef(w, "\nNote: needle and replacement split into a different number of words; only the literal needle is replaced.\n")
	}

	if len(result.Actions) > 0 {
		cliutil.Writef(w, "\n")
	}
	for _, a := range result.Actions {
		cliutil.Writef(w, "%s\n", a)
	}

	s := result.Summary
	cliutil.Writef(w, "\nSummary: %d rename(s), %d content change(s), %d skipped, %d error(s)\n",
		s.Renames, s.Rewrites, s.Skipped, s.Errors)
	switch {
	case result.DryRun:
		cliutil.Writef(w, "Dry run: no changes were made.\n")
	case s.Renames+s.Rewrites == 0:
		cliutil.Writef(w, "Nothing to change.\n")
	}
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
