package renamer

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/erraggy/recase/recaseerrors"
)

// Option is a function that configures a run
type Option func(*runOptions) error

type runOptions struct {
	// Input (required)
	root        *string
	needle      *string
	replacement *string

	cfg      Config
	logger   *slog.Logger
	observer Observer
}

// RunWithOptions runs a rename using functional options. WithRoot, WithNeedle
// and WithReplacement are required.
//
// Example:
//
//	result, err := renamer.RunWithOptions(
//	    renamer.WithRoot("./src"),
//	    renamer.WithNeedle("fooBar"),
//	    renamer.WithReplacement("bazQux"),
//	    renamer.WithExcludedDirs(".git", "node_modules"),
//	)
func RunWithOptions(opts ...Option) (*Result, error) {
	o, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("renamer: invalid options: %w", err)
	}

	r := New(o.cfg)
	if o.logger != nil {
		r.Logger = o.logger
	}
	if o.observer != nil {
		r.Observer = o.observer
	}
	return r.Run(*o.root, *o.needle, *o.replacement)
}

func applyOptions(opts ...Option) (*runOptions, error) {
	o := &runOptions{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	switch {
	case o.root == nil:
		return nil, &recaseerrors.ConfigError{Option: "root", Message: "no root directory specified: use WithRoot"}
	case o.needle == nil:
		return nil, &recaseerrors.ConfigError{Option: "needle", Message: "no needle specified: use WithNeedle"}
	case o.replacement == nil:
		return nil, &recaseerrors.ConfigError{Option: "replacement", Message: "no replacement specified: use WithReplacement"}
	}
	return o, nil
}

// WithRoot specifies the directory to walk.
func WithRoot(path string) Option {
	return func(o *runOptions) error {
		if path == "" {
			return &recaseerrors.ConfigError{Option: "root", Message: "root directory cannot be empty"}
		}
		o.root = &path
		return nil
	}
}

// WithNeedle specifies the string to search for.
func WithNeedle(needle string) Option {
	return func(o *runOptions) error {
		if needle == "" {
			return &recaseerrors.ConfigError{Option: "needle", Message: "needle cannot be empty"}
		}
		o.needle = &needle
		return nil
	}
}

// WithReplacement specifies the string to substitute. An empty replacement
// deletes the needle.
func WithReplacement(replacement string) Option {
	return func(o *runOptions) error {
		o.replacement = &replacement
		return nil
	}
}

// WithConfig replaces the whole Config. Options applied after it still
// override individual fields.
func WithConfig(cfg Config) Option {
	return func(o *runOptions) error {
		o.cfg = cfg
		o.cfg.ExcludedDirs = slices.Clone(cfg.ExcludedDirs)
		o.cfg.ExcludedExtensions = slices.Clone(cfg.ExcludedExtensions)
		return nil
	}
}

// WithDryRun enables or disables dry-run mode.
func WithDryRun(dryRun bool) Option {
	return func(o *runOptions) error {
		o.cfg.DryRun = dryRun
		return nil
	}
}

// WithIncludeContents enables or disables rewriting of file contents.
func WithIncludeContents(include bool) Option {
	return func(o *runOptions) error {
		o.cfg.IncludeContents = include
		return nil
	}
}

// WithExcludedDirs appends directory exclusion patterns.
func WithExcludedDirs(patterns ...string) Option {
	return func(o *runOptions) error {
		o.cfg.ExcludedDirs = append(o.cfg.ExcludedDirs, patterns...)
		return nil
	}
}

// WithExcludedExtensions appends extension exclusion patterns.
func WithExcludedExtensions(patterns ...string) Option {
	return func(o *runOptions) error {
		o.cfg.ExcludedExtensions = append(o.cfg.ExcludedExtensions, patterns...)
		return nil
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *runOptions) error {
		o.logger = logger
		return nil
	}
}

// WithObserver sets the progress observer.
func WithObserver(observer Observer) Option {
	return func(o *runOptions) error {
		o.observer = observer
		return nil
	}
}
