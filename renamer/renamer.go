package renamer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/erraggy/recase/recaseerrors"
	"github.com/erraggy/recase/replacer"
)

// Config selects what a run touches.
type Config struct {
	// ExcludedDirs are directory names or globs that are not descended into.
	// Patterns are matched against the directory name and against its
	// slash-separated path relative to the root.
	ExcludedDirs []string `json:"excluded_dirs,omitempty" yaml:"excluded_dirs,omitempty"`
	// ExcludedExtensions are file extensions ("png", ".png") or globs
	// ("*.min.js") whose files are neither renamed nor rewritten.
	ExcludedExtensions []string `json:"excluded_extensions,omitempty" yaml:"excluded_extensions,omitempty"`
	// DryRun computes actions without touching the filesystem.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
	// IncludeContents enables rewriting of text file contents.
	IncludeContents bool `json:"include_contents" yaml:"include_contents"`
}

// Observer receives progress notifications during a run.
type Observer interface {
	// Begin is called once with the number of steps the run will take.
	Begin(total int)
	// Advance is called after each step.
	Advance(path string)
	// End is called once when the run finishes.
	End()
}

type nopObserver struct{}

func (nopObserver) Begin(int)      {}
func (nopObserver) Advance(string) {}
func (nopObserver) End()           {}

// Renamer walks a tree and applies a case-preserving rename to it.
type Renamer struct {
	// Config selects exclusions, dry-run and content rewriting.
	Config Config
	// Logger receives debug output. Defaults to a discarding logger.
	Logger *slog.Logger
	// Observer receives progress notifications. Defaults to a no-op.
	Observer Observer
}

// New creates a Renamer for cfg.
func New(cfg Config) *Renamer {
	return &Renamer{
		Config:   cfg,
		Logger:   slog.New(slog.DiscardHandler),
		Observer: nopObserver{},
	}
}

// Run renames every path under root whose base name contains a variant of
// needle, and rewrites file contents when Config.IncludeContents is set.
//
// The returned error is non-nil only for an invalid needle, exclusion
// pattern or root; per-path failures are reported in the Result.
func (r *Renamer) Run(root, needle, replacement string) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	observer := r.Observer
	if observer == nil {
		observer = nopObserver{}
	}

	rep, err := replacer.New(needle, replacement)
	if err != nil {
		return nil, fmt.Errorf("renamer: %w", err)
	}
	excl, err := newExclusions(r.Config.ExcludedDirs, r.Config.ExcludedExtensions)
	if err != nil {
		return nil, fmt.Errorf("renamer: %w", err)
	}
	root = filepath.Clean(root)
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	result := &Result{
		Root:            root,
		Needle:          needle,
		Replacement:     replacement,
		DryRun:          r.Config.DryRun,
		IncludeContents: r.Config.IncludeContents,
		LiteralFallback: rep.Literal(),
	}
	if rep.Literal() {
		logger.Info("needle and replacement split into different token counts; using literal replacement",
			"needle", needle, "replacement", replacement)
	}

	w := &run{
		cfg:      r.Config,
		rep:      rep,
		logger:   logger,
		observer: observer,
		result:   result,
		claimed:  make(map[string]bool),
		vacated:  make(map[string]bool),
	}

	entries := w.collect(root, excl)

	total := len(entries)
	if r.Config.IncludeContents {
		total += countFiles(entries)
	}
	observer.Begin(total)

	if r.Config.IncludeContents {
		for _, e := range entries {
			if e.isDir {
				continue
			}
			w.rewrite(e)
			observer.Advance(e.path)
		}
	}
	for _, e := range entries {
		w.rename(e)
		observer.Advance(e.path)
	}
	observer.End()

	result.summarize()
	return result, nil
}

// run holds the state of a single Run call.
type run struct {
	cfg      Config
	rep      *replacer.Replacer
	logger   *slog.Logger
	observer Observer
	result   *Result

	// claimed holds rename targets taken earlier in this run; vacated holds
	// source paths renamed away (or, in dry-run, planned to be).
	claimed map[string]bool
	vacated map[string]bool
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		msg := "cannot access"
		if os.IsNotExist(err) {
			msg = "does not exist"
		}
		return &recaseerrors.RootError{Path: root, Message: msg, Cause: err}
	}
	if !info.IsDir() {
		return &recaseerrors.RootError{Path: root, Message: "not a directory"}
	}
	return nil
}

func countFiles(entries []entry) int {
	n := 0
	for _, e := range entries {
		if !e.isDir {
			n++
		}
	}
	return n
}
