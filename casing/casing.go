package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Convention identifies a casing style.
type Convention string

const (
	// CamelCase is lower first token, title-cased rest, no separator: "fooBar"
	CamelCase Convention = "camelCase"
	// PascalCase is every token title-cased, no separator: "FooBar"
	PascalCase Convention = "PascalCase"
	// SnakeCase is lowercase tokens joined with '_': "foo_bar"
	SnakeCase Convention = "snake_case"
	// KebabCase is lowercase tokens joined with '-': "foo-bar"
	KebabCase Convention = "kebab-case"
	// Literal means no convention applies; strings are used as given.
	Literal Convention = "literal"
)

// Conventions returns the re-casing conventions in priority order. When two
// conventions render the same surface, the earlier one is preferred.
func Conventions() []Convention {
	return []Convention{CamelCase, PascalCase, SnakeCase, KebabCase}
}

// IsValid returns true if c is one of the defined constants.
func (c Convention) IsValid() bool {
	switch c {
	case CamelCase, PascalCase, SnakeCase, KebabCase, Literal:
		return true
	default:
		return false
	}
}

// String returns the convention name.
func (c Convention) String() string {
	return string(c)
}

// Classify reports the convention s is written in. See the package
// documentation for the decision order.
func Classify(s string) Convention {
	switch {
	case strings.ContainsRune(s, '_'):
		return SnakeCase
	case strings.ContainsRune(s, '-'):
		return KebabCase
	}

	first, _ := utf8.DecodeRuneInString(s)
	switch {
	case s == "":
		return Literal
	case unicode.IsUpper(first):
		return PascalCase
	case unicode.IsLower(first):
		return CamelCase
	default:
		return Literal
	}
}

func isDelimiter(r rune) bool {
	return r == '_' || r == '-'
}

// Tokenize splits s into word fragments on '_', '-' and capitalization
// transitions. An uppercase rune starts a new token when it follows a
// lowercase rune or a digit, or when it ends an uppercase run that is followed
// by a lowercase rune ("HTTPServer" -> "HTTP", "Server"). Digits never split
// and delimiter runs never produce empty tokens.
func Tokenize(s string) []string {
	runes := []rune(s)
	var tokens []string
	start := 0

	flush := func(end int) {
		if end > start {
			tokens = append(tokens, string(runes[start:end]))
		}
	}

	for i, r := range runes {
		if isDelimiter(r) {
			flush(i)
			start = i + 1
			continue
		}
		if i == start || !unicode.IsUpper(r) {
			continue
		}
		prev := runes[i-1]
		nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return tokens
}

// Join renders tokens in convention c. Literal concatenates the tokens
// unchanged; an unknown convention is treated as Literal.
func Join(tokens []string, c Convention) string {
	if len(tokens) == 0 {
		return ""
	}

	lower := cases.Lower(language.Und)
	title := cases.Title(language.Und)

	var b strings.Builder
	switch c {
	case CamelCase:
		b.WriteString(lower.String(tokens[0]))
		for _, t := range tokens[1:] {
			b.WriteString(title.String(t))
		}
	case PascalCase:
		for _, t := range tokens {
			b.WriteString(title.String(t))
		}
	case SnakeCase, KebabCase:
		sep := "_"
		if c == KebabCase {
			sep = "-"
		}
		for i, t := range tokens {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(lower.String(t))
		}
	default:
		for _, t := range tokens {
			b.WriteString(t)
		}
	}
	return b.String()
}

// Render re-cases s into convention c. Literal returns s untouched.
func Render(s string, c Convention) string {
	if c == Literal || !c.IsValid() {
		return s
	}
	return Join(Tokenize(s), c)
}
