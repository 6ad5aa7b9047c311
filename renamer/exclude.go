package renamer

import (
	"path/filepath"
	"strings"

	"github.com/erraggy/recase/recaseerrors"
	"github.com/gobwas/glob"
)

// globMeta are the characters that make an exclusion entry a glob rather
// than a plain name or extension.
const globMeta = "*?[{"

// exclusions decides which entries traversal drops.
type exclusions struct {
	dirs []glob.Glob
	exts []glob.Glob
}

func newExclusions(dirPatterns, extPatterns []string) (*exclusions, error) {
	e := &exclusions{}

	for _, p := range dirPatterns {
		p = strings.TrimSuffix(strings.TrimSpace(p), "/")
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, &recaseerrors.ConfigError{Option: "exclude-dirs", Value: p, Message: "invalid pattern", Cause: err}
		}
		e.dirs = append(e.dirs, g)
	}

	for _, p := range extPatterns {
		p = extensionPattern(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, &recaseerrors.ConfigError{Option: "exclude-extensions", Value: p, Message: "invalid pattern", Cause: err}
		}
		e.exts = append(e.exts, g)
	}

	return e, nil
}

// extensionPattern normalises an extension entry to a lowercase glob over
// file names: "PNG" and ".png" become "*.png"; globs are kept as given.
func extensionPattern(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	if p == "" || p == "." {
		return ""
	}
	if strings.ContainsAny(p, globMeta) {
		return p
	}
	return "*." + strings.TrimPrefix(p, ".")
}

// excludeDir reports whether the directory with base name name and
// slash-separated root-relative path rel is excluded.
func (e *exclusions) excludeDir(name, rel string) bool {
	for _, g := range e.dirs {
		if g.Match(name) || g.Match(rel) {
			return true
		}
	}
	return false
}

// excludeFile reports whether a file with base name name is excluded by
// extension.
func (e *exclusions) excludeFile(name string) bool {
	lower := strings.ToLower(name)
	for _, g := range e.exts {
		if g.Match(lower) {
			return true
		}
	}
	return false
}

// relSlash returns p relative to root with forward slashes.
func relSlash(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}
