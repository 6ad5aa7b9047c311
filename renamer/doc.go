// Package renamer applies a case-preserving rename across a directory tree.
//
// A run has three stages:
//
//  1. Traversal walks the tree depth-first and takes a snapshot of every
//     entry, in post-order so that children always precede their directory.
//     Excluded directories are not descended into and files with excluded
//     extensions are dropped before they reach the later stages.
//  2. When Config.IncludeContents is set, every regular text file is read in
//     full, rewritten with a replacer.Replacer and written back only if the
//     content changed. Files containing NUL bytes are treated as binary and
//     left alone.
//  3. Every entry whose base name contains a variant of the needle is
//     renamed, deepest first, so that parent paths stay valid until all of
//     their children are done. A rename never overwrites: an existing target
//     is reported as a conflict and skipped.
//
// Per-path failures never abort a run; they are recorded in the Result as
// skip or error actions. Only an invalid configuration or root directory is
// returned as an error, and only before anything is touched.
//
// # Dry Run
//
// With Config.DryRun the same actions are computed and returned, but no file
// is written and nothing is renamed:
//
//	result, err := renamer.RunWithOptions(
//	    renamer.WithRoot("."),
//	    renamer.WithNeedle("fooBar"),
//	    renamer.WithReplacement("bazQux"),
//	    renamer.WithDryRun(true),
//	)
//	for _, a := range result.Actions {
//	    fmt.Println(a.Type, a.Path, a.Target)
//	}
//
// # Options
//
// RunWithOptions accepts:
//
//	WithRoot                directory to walk (required)
//	WithNeedle              string to search for (required)
//	WithReplacement         string to substitute (required, may be empty)
//	WithConfig              replace the whole Config
//	WithDryRun              compute actions only
//	WithIncludeContents     rewrite text file contents
//	WithExcludedDirs        append directory exclusion patterns
//	WithExcludedExtensions  append extension exclusion patterns
//	WithLogger              debug logger
//	WithObserver            progress observer
package renamer
