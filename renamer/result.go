package renamer

import "fmt"

// ActionType identifies what happened (or would happen) to a path.
type ActionType string

const (
	// ActionRename is a file or directory rename.
	ActionRename ActionType = "rename"
	// ActionRewrite is a content rewrite.
	ActionRewrite ActionType = "rewrite"
	// ActionSkip is a path that matched but was deliberately left alone.
	ActionSkip ActionType = "skip"
	// ActionError is a path that could not be processed.
	ActionError ActionType = "error"
)

// Change counts substitutions of one variant within a file.
type Change struct {
	From  string `json:"from"  yaml:"from"`
	To    string `json:"to"    yaml:"to"`
	Count int    `json:"count" yaml:"count"`
}

// Action records one outcome of a run.
type Action struct {
	Type ActionType `json:"type" yaml:"type"`
	// Path is the path acted on, as found during traversal.
	Path string `json:"path" yaml:"path"`
	// Target is the new path of a rename.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	IsDir  bool   `json:"is_dir,omitempty" yaml:"is_dir,omitempty"`
	// Occurrences is the total number of substitutions of a rewrite.
	Occurrences int `json:"occurrences,omitempty" yaml:"occurrences,omitempty"`
	// Changes lists the substitutions of a rewrite by variant, in order of
	// first appearance.
	Changes []Change `json:"changes,omitempty" yaml:"changes,omitempty"`
	// Reason explains a skip or error.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
	// Applied is true once the filesystem was actually changed.
	Applied bool `json:"applied" yaml:"applied"`
	// Err is the underlying error of a skip or error action.
	Err error `json:"-" yaml:"-"`
}

// String returns a one-line, human-readable description of the action.
func (a Action) String() string {
	switch a.Type {
	case ActionRename:
		if a.Applied {
			return fmt.Sprintf("Renamed %q to %q", a.Path, a.Target)
		}
		return fmt.Sprintf("Would rename %q to %q", a.Path, a.Target)
	case ActionRewrite:
		verb := "Would replace"
		if a.Applied {
			verb = "Replaced"
		}
		return fmt.Sprintf("%s %d occurrence(s) in %q", verb, a.Occurrences, a.Path)
	case ActionSkip:
		return fmt.Sprintf("Skipped %q: %s", a.Path, a.Reason)
	case ActionError:
		return fmt.Sprintf("Error processing %q: %s", a.Path, a.Reason)
	default:
		return fmt.Sprintf("%s %q", a.Type, a.Path)
	}
}

// Summary counts actions by type.
type Summary struct {
	Renames  int `json:"renames"  yaml:"renames"`
	Rewrites int `json:"rewrites" yaml:"rewrites"`
	Skipped  int `json:"skipped"  yaml:"skipped"`
	Errors   int `json:"errors"   yaml:"errors"`
}

// Result is the outcome of a run.
type Result struct {
	Root            string `json:"root"             yaml:"root"`
	Needle          string `json:"needle"           yaml:"needle"`
	Replacement     string `json:"replacement"      yaml:"replacement"`
	DryRun          bool   `json:"dry_run"          yaml:"dry_run"`
	IncludeContents bool   `json:"include_contents" yaml:"include_contents"`
	// LiteralFallback is true when needle and replacement have different
	// token counts and only exact matches were replaced.
	LiteralFallback bool     `json:"literal_fallback" yaml:"literal_fallback"`
	Actions         []Action `json:"actions"          yaml:"actions"`
	Summary         Summary  `json:"summary"          yaml:"summary"`
}

// HasErrors returns true if any path could not be processed.
func (r *Result) HasErrors() bool {
	return r.Summary.Errors > 0
}

// ActionsOfType returns the actions of type t, in run order.
func (r *Result) ActionsOfType(t ActionType) []Action {
	var out []Action
	for _, a := range r.Actions {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

func (r *Result) add(a Action) {
	r.Actions = append(r.Actions, a)
}

func (r *Result) summarize() {
	r.Summary = Summary{}
	for _, a := range r.Actions {
		switch a.Type {
		case ActionRename:
			r.Summary.Renames++
		case ActionRewrite:
			r.Summary.Rewrites++
		case ActionSkip:
			r.Summary.Skipped++
		case ActionError:
			r.Summary.Errors++
		}
	}
}
