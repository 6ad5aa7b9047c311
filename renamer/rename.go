package renamer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/recase/internal/fileutil"
	"github.com/erraggy/recase/recaseerrors"
)

// rename renames e if its base name contains a variant of the needle.
// Entries arrive deepest-first, so e's parent still has its original path.
func (w *run) rename(e entry) {
	dir, name := filepath.Split(e.path)
	newName := w.rep.Replace(name)
	if newName == name {
		return
	}

	a := Action{Type: ActionRename, Path: e.path, IsDir: e.isDir}

	if !validName(newName) {
		a.Type = ActionSkip
		a.Reason = fmt.Sprintf("replacement produces invalid name %q", newName)
		w.result.add(a)
		return
	}

	target := filepath.Join(dir, newName)
	a.Target = target

	if w.taken(e.path, target) {
		conflict := &recaseerrors.ConflictError{Path: e.path, Target: target}
		w.logger.Debug("rename conflict", "path", e.path, "target", target)
		a.Type = ActionSkip
		a.Reason = conflict.Error()
		a.Err = conflict
		w.result.add(a)
		return
	}

	if !w.cfg.DryRun {
		if err := os.Rename(e.path, target); err != nil {
			w.logger.Debug("rename failed", "path", e.path, "target", target, "error", err)
			a.Type = ActionError
			a.Reason = "rename: " + err.Error()
			a.Err = &recaseerrors.FileError{Op: "rename", Path: e.path, Cause: err}
			w.result.add(a)
			return
		}
		a.Applied = true
	}

	w.claimed[target] = true
	w.vacated[e.path] = true
	delete(w.vacated, target)
	w.logger.Debug("rename", "path", e.path, "target", target, "applied", a.Applied)
	w.result.add(a)
}

// taken reports whether target is unavailable for src: claimed by an earlier
// rename of this run, or present on disk and not vacated by one. A target
// that is the same file as src (a case-only rename on a case-insensitive
// filesystem) is available.
func (w *run) taken(src, target string) bool {
	if w.claimed[target] {
		return true
	}
	if w.vacated[target] || !fileutil.Exists(target) {
		return false
	}
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return true
	}
	targetInfo, err := os.Lstat(target)
	if err != nil {
		return true
	}
	return !os.SameFile(srcInfo, targetInfo)
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/"+string(filepath.Separator))
}
