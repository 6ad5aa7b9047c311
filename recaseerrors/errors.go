package recaseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrInvalidRoot indicates the root directory cannot be traversed.
	ErrInvalidRoot = errors.New("invalid root directory")

	// ErrTargetExists indicates a rename would overwrite an existing path.
	ErrTargetExists = errors.New("target already exists")

	// ErrFile indicates an I/O failure on a single path.
	ErrFile = errors.New("file error")
)

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// RootError reports a root directory that cannot be walked.
type RootError struct {
	// Path is the root as given by the caller
	Path string
	// Message describes why the root was rejected
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *RootError) Error() string {
	msg := "invalid root directory"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *RootError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *RootError) Is(target error) bool {
	return target == ErrInvalidRoot
}

// ConflictError reports a rename whose target is already taken, either on
// disk or by an earlier rename in the same run.
type ConflictError struct {
	// Path is the path that would have been renamed
	Path string
	// Target is the path that is already taken
	Target string
}

// Error returns a human-readable error message.
func (e *ConflictError) Error() string {
	msg := "target already exists"
	if e.Target != "" {
		msg += ": " + e.Target
	}
	if e.Path != "" {
		msg += " (renaming " + e.Path + ")"
	}
	return msg
}

// Unwrap returns nil as ConflictError has no underlying cause.
func (e *ConflictError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ConflictError) Is(target error) bool {
	return target == ErrTargetExists
}

// FileError represents an I/O failure on one path.
type FileError struct {
	// Op is the operation that failed: "read", "write", "rename" or "walk"
	Op string
	// Path is the path the operation was applied to
	Path string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FileError) Error() string {
	msg := "file error"
	if e.Op != "" {
		msg = e.Op + " failed"
	}
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FileError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FileError) Is(target error) bool {
	return target == ErrFile
}
