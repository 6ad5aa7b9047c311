// Package fileutil holds small filesystem helpers shared by recase packages.
package fileutil

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
)

// ReadableByAll is the fallback mode for rewritten files whose original
// permission bits are unknown.
const ReadableByAll os.FileMode = 0o644

// sniffLen matches the prefix git inspects when deciding a blob is binary.
const sniffLen = 8000

// IsBinary reports whether data looks like binary content: a NUL byte within
// the first 8000 bytes.
func IsBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}

// Exists reports whether path names an existing file, directory or symlink.
// Symlinks are not followed. Errors other than "not exist" count as existing
// so callers never overwrite something they could not inspect.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// Perm returns the permission bits of info, or ReadableByAll when info is nil.
func Perm(info fs.FileInfo) os.FileMode {
	if info == nil {
		return ReadableByAll
	}
	return info.Mode().Perm()
}
