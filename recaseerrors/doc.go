// Package recaseerrors provides structured error types for recase.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to tell fatal setup problems apart from the
// per-path failures that a run reports and skips.
//
// # Error Categories
//
//   - ConfigError: invalid options, empty needle, malformed config files
//   - RootError: the root directory is missing or is not a directory
//   - ConflictError: a rename target already exists
//   - FileError: a read, write, rename or walk failure on a single path
//
// # Usage with errors.Is
//
//	_, err := renamer.RunWithOptions(renamer.WithRoot(dir), ...)
//	if errors.Is(err, recaseerrors.ErrInvalidRoot) {
//	    // nothing was traversed
//	}
//
// # Usage with errors.As
//
//	var fileErr *recaseerrors.FileError
//	if errors.As(err, &fileErr) {
//	    fmt.Println(fileErr.Op, fileErr.Path)
//	}
package recaseerrors
