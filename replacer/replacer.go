package replacer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/erraggy/recase/casing"
	"github.com/erraggy/recase/recaseerrors"
)

// Variant pairs one surface form of the needle with the replacement rendered
// in the same convention.
type Variant struct {
	Convention  casing.Convention `json:"convention"  yaml:"convention"`
	Needle      string            `json:"needle"      yaml:"needle"`
	Replacement string            `json:"replacement" yaml:"replacement"`
}

// Occurrence is a located match of the needle in a larger string.
type Occurrence struct {
	// Offset is the byte offset of the match.
	Offset int `json:"offset" yaml:"offset"`
	// Variant is the surface form that matched.
	Variant Variant `json:"variant" yaml:"variant"`
}

// Replacer substitutes every case variant of a needle. A Replacer is
// immutable after New and safe for concurrent use.
type Replacer struct {
	needle      string
	replacement string
	literal     bool
	variants    []Variant
	bySurface   map[string]Variant
	pattern     *regexp.Regexp
}

// New builds a Replacer for needle and replacement. An empty needle is a
// *recaseerrors.ConfigError; an empty replacement deletes matches.
func New(needle, replacement string) (*Replacer, error) {
	if needle == "" {
		return nil, &recaseerrors.ConfigError{Option: "needle", Message: "must not be empty"}
	}

	r := &Replacer{
		needle:      needle,
		replacement: replacement,
		bySurface:   make(map[string]Variant),
	}

	needleTokens := casing.Tokenize(needle)
	replacementTokens := casing.Tokenize(replacement)
	r.literal = len(needleTokens) == 0 || len(needleTokens) != len(replacementTokens)

	if !r.literal {
		for _, c := range casing.Conventions() {
			r.add(Variant{
				Convention:  c,
				Needle:      casing.Join(needleTokens, c),
				Replacement: casing.Join(replacementTokens, c),
			})
		}
	}
	r.add(Variant{Convention: casing.Literal, Needle: needle, Replacement: replacement})

	r.pattern = compile(r.variants)
	return r, nil
}

// add registers v unless its surface is empty or already taken by a variant
// with higher priority.
func (r *Replacer) add(v Variant) {
	if v.Needle == "" {
		return
	}
	if _, exists := r.bySurface[v.Needle]; exists {
		return
	}
	r.bySurface[v.Needle] = v
	r.variants = append(r.variants, v)
}

// compile builds one alternation over all surfaces. Longest() turns Go's
// leftmost-first alternation into leftmost-longest.
func compile(variants []Variant) *regexp.Regexp {
	surfaces := make([]string, 0, len(variants))
	for _, v := range variants {
		surfaces = append(surfaces, regexp.QuoteMeta(v.Needle))
	}
	sort.SliceStable(surfaces, func(i, j int) bool {
		return len(surfaces[i]) > len(surfaces[j])
	})
	re := regexp.MustCompile(strings.Join(surfaces, "|"))
	re.Longest()
	return re
}

// Replace is the one-shot form of New(needle, replacement).Replace(text).
// An empty needle leaves text unchanged.
func Replace(text, needle, replacement string) string {
	r, err := New(needle, replacement)
	if err != nil {
		return text
	}
	return r.Replace(text)
}

// Needle returns the needle as given to New.
func (r *Replacer) Needle() string {
	return r.needle
}

// Replacement returns the replacement as given to New.
func (r *Replacer) Replacement() string {
	return r.replacement
}

// Literal reports whether the token counts of needle and replacement differ,
// in which case only the exact needle is replaced, verbatim.
func (r *Replacer) Literal() bool {
	return r.literal
}

// Variants returns the surface forms searched for, in priority order.
func (r *Replacer) Variants() []Variant {
	out := make([]Variant, len(r.variants))
	copy(out, r.variants)
	return out
}

// Contains reports whether text holds any variant of the needle.
func (r *Replacer) Contains(text string) bool {
	return r.pattern.MatchString(text)
}

// Find returns every non-overlapping occurrence in text, left to right.
func (r *Replacer) Find(text string) []Occurrence {
	locs := r.pattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]Occurrence, 0, len(locs))
	for _, loc := range locs {
		out = append(out, Occurrence{
			Offset:  loc[0],
			Variant: r.bySurface[text[loc[0]:loc[1]]],
		})
	}
	return out
}

// Replace substitutes every occurrence in text. Text without a match is
// returned as is.
func (r *Replacer) Replace(text string) string {
	out, _ := r.ReplaceCount(text)
	return out
}

// ReplaceCount is Replace that also reports how many substitutions were made.
func (r *Replacer) ReplaceCount(text string) (string, int) {
	locs := r.pattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text, 0
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range locs {
		b.WriteString(text[last:loc[0]])
		b.WriteString(r.bySurface[text[loc[0]:loc[1]]].Replacement)
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String(), len(locs)
}
