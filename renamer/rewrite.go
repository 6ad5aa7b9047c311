package renamer

import (
	"os"

	"github.com/erraggy/recase/internal/fileutil"
	"github.com/erraggy/recase/recaseerrors"
	"github.com/erraggy/recase/replacer"
)

// rewrite applies the replacer to the content of e and writes it back when
// it changed.
func (w *run) rewrite(e entry) {
	if !e.regular {
		return
	}

	info, err := os.Stat(e.path)
	if err != nil {
		w.fail("read", e, err)
		return
	}
	data, err := os.ReadFile(e.path)
	if err != nil {
		w.fail("read", e, err)
		return
	}

	text := string(data)
	if fileutil.IsBinary(data) {
		if w.rep.Contains(text) {
			w.result.add(Action{Type: ActionSkip, Path: e.path, Reason: "binary file"})
		}
		return
	}

	occs := w.rep.Find(text)
	if len(occs) == 0 {
		return
	}
	out := w.rep.Replace(text)
	if out == text {
		return
	}

	a := Action{Type: ActionRewrite, Path: e.path, Occurrences: len(occs), Changes: changesOf(occs)}
	if !w.cfg.DryRun {
		if err := os.WriteFile(e.path, []byte(out), fileutil.Perm(info)); err != nil {
			w.fail("write", e, err)
			return
		}
		a.Applied = true
	}
	w.logger.Debug("rewrite", "path", e.path, "occurrences", a.Occurrences, "applied", a.Applied)
	w.result.add(a)
}

func (w *run) fail(op string, e entry, err error) {
	w.logger.Debug(op+" failed", "path", e.path, "error", err)
	w.result.add(Action{
		Type:   ActionError,
		Path:   e.path,
		IsDir:  e.isDir,
		Reason: op + ": " + err.Error(),
		Err:    &recaseerrors.FileError{Op: op, Path: e.path, Cause: err},
	})
}

// changesOf groups occurrences by variant, in order of first appearance.
func changesOf(occs []replacer.Occurrence) []Change {
	var changes []Change
	index := make(map[string]int)
	for _, o := range occs {
		i, ok := index[o.Variant.Needle]
		if !ok {
			i = len(changes)
			index[o.Variant.Needle] = i
			changes = append(changes, Change{From: o.Variant.Needle, To: o.Variant.Replacement})
		}
		changes[i].Count++
	}
	return changes
}
