package renamer

import (
	"path/filepath"

	"github.com/erraggy/recase/recaseerrors"
	"github.com/karrick/godirwalk"
)

// entry is one traversed path.
type entry struct {
	path    string
	isDir   bool
	regular bool
}

// collect walks root and returns a post-order snapshot: every entry comes
// before its parent directory. The root itself is not included. Walk errors
// are recorded as error actions and the failing node is skipped.
func (w *run) collect(root string, excl *exclusions) []entry {
	var entries []entry
	skipped := make(map[string]bool)

	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if osPathname == root {
				return nil
			}
			name := filepath.Base(osPathname)

			if de.IsDir() {
				if excl.excludeDir(name, relSlash(root, osPathname)) {
					w.logger.Debug("skipping excluded directory", "path", osPathname)
					skipped[osPathname] = true
					return godirwalk.SkipThis
				}
				return nil
			}

			if excl.excludeFile(name) {
				w.logger.Debug("skipping excluded file", "path", osPathname)
				return nil
			}
			entries = append(entries, entry{path: osPathname, regular: de.IsRegular()})
			return nil
		},
		PostChildrenCallback: func(osPathname string, _ *godirwalk.Dirent) error {
			if osPathname == root || skipped[osPathname] {
				return nil
			}
			entries = append(entries, entry{path: osPathname, isDir: true})
			return nil
		},
		ErrorCallback: func(osPathname string, err error) godirwalk.ErrorAction {
			w.logger.Debug("walk error", "path", osPathname, "error", err)
			fileErr := &recaseerrors.FileError{Op: "walk", Path: osPathname, Cause: err}
			w.result.add(Action{
				Type:   ActionError,
				Path:   osPathname,
				Reason: err.Error(),
				Err:    fileErr,
			})
			return godirwalk.SkipNode
		},
		Unsorted: false,
	})
	if err != nil {
		// Only reachable if a callback returns a real error, which none do.
		w.result.add(Action{Type: ActionError, Path: root, Reason: err.Error(), Err: err})
	}

	return entries
}
