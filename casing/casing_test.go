package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Convention
	}{
		// Basic conventions
		{name: "camelCase", input: "fooBar", want: CamelCase},
		{name: "snake_case", input: "foo_bar", want: SnakeCase},
		{name: "PascalCase", input: "FooBar", want: PascalCase},
		{name: "kebab-case", input: "foo-bar", want: KebabCase},

		// Single words
		{name: "single lowercase word", input: "foo", want: CamelCase},
		{name: "single capitalized word", input: "Foo", want: PascalCase},
		{name: "acronym", input: "JSON", want: PascalCase},
		{name: "camel with acronym", input: "isJSON", want: CamelCase},
		{name: "pascal with acronym", input: "XMLHttpRequest", want: PascalCase},

		// Digits
		{name: "camel with digits", input: "came1l1CaseString", want: CamelCase},
		{name: "pascal with digits", input: "NoConvention123", want: PascalCase},
		{name: "snake with digits", input: "snak1e1_1case_string", want: SnakeCase},
		{name: "kebab with digits", input: "keba1b1-1case-string", want: KebabCase},

		// Priority order: underscore beats hyphen beats capitalization
		{name: "screaming snake is snake", input: "FOO_BAR", want: SnakeCase},
		{name: "pascal snake is snake", input: "Foo_Bar", want: SnakeCase},
		{name: "underscore and hyphen is snake", input: "foo_bar-baz", want: SnakeCase},
		{name: "capitalized kebab is kebab", input: "Foo-Bar", want: KebabCase},
		{name: "leading underscore", input: "_private", want: SnakeCase},

		// Literal
		{name: "empty string", input: "", want: Literal},
		{name: "leading digit", input: "1abc", want: Literal},
		{name: "leading symbol", input: ".hidden", want: Literal},
		{name: "whitespace", input: " foo", want: Literal},

		// Unicode
		{name: "unicode uppercase", input: "Über", want: PascalCase},
		{name: "unicode lowercase", input: "über", want: CamelCase},
		{name: "uncased script", input: "日本語", want: Literal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input), "Classify(%q)", tt.input)
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	inputs := []string{"", "fooBar", "FOO_BAR", "a-b", "X", "1", "__", "--", "Foo Bar"}
	for _, in := range inputs {
		first := Classify(in)
		for range 5 {
			assert.Equal(t, first, Classify(in), "Classify(%q) changed between calls", in)
		}
		assert.True(t, first.IsValid(), "Classify(%q) returned invalid convention %q", in, first)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty string", input: "", want: nil},
		{name: "single word", input: "foo", want: []string{"foo"}},
		{name: "camelCase", input: "fooBar", want: []string{"foo", "Bar"}},
		{name: "PascalCase", input: "FooBarBaz", want: []string{"Foo", "Bar", "Baz"}},
		{name: "snake_case", input: "foo_bar_baz", want: []string{"foo", "bar", "baz"}},
		{name: "kebab-case", input: "foo-bar", want: []string{"foo", "bar"}},
		{name: "screaming snake", input: "FOO_BAR", want: []string{"FOO", "BAR"}},
		{name: "trailing acronym", input: "isJSON", want: []string{"is", "JSON"}},
		{name: "leading acronym", input: "XMLHttpRequest", want: []string{"XML", "Http", "Request"}},
		{name: "acronym before word", input: "HTTPServer", want: []string{"HTTP", "Server"}},
		{name: "digits stay with word", input: "keb1ab-case", want: []string{"keb1ab", "case"}},
		{name: "uppercase after digit", input: "v2Api", want: []string{"v2", "Api"}},
		{name: "digit token", input: "this-is-1-thing", want: []string{"this", "is", "1", "thing"}},
		{name: "mixed delimiters", input: "This-Is_Already_Mixed", want: []string{"This", "Is", "Already", "Mixed"}},
		{name: "delimiter run", input: "This--Is__Mixed", want: []string{"This", "Is", "Mixed"}},
		{name: "leading and trailing delimiters", input: "_foo-", want: []string{"foo"}},
		{name: "only delimiters", input: "_-_", want: nil},
		{name: "unicode", input: "überUser", want: []string{"über", "User"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input), "Tokenize(%q)", tt.input)
		})
	}
}

func TestJoin(t *testing.T) {
	tokens := []string{"this", "Is", "1", "KEB1AB", "case"}

	tests := []struct {
		convention Convention
		want       string
	}{
		{CamelCase, "thisIs1Keb1abCase"},
		{PascalCase, "ThisIs1Keb1abCase"},
		{SnakeCase, "this_is_1_keb1ab_case"},
		{KebabCase, "this-is-1-keb1ab-case"},
		{Literal, "thisIs1KEB1ABcase"},
	}

	for _, tt := range tests {
		t.Run(tt.convention.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tokens, tt.convention))
		})
	}

	t.Run("no tokens", func(t *testing.T) {
		assert.Equal(t, "", Join(nil, PascalCase))
	})

	t.Run("unknown convention is literal", func(t *testing.T) {
		assert.Equal(t, "fooBar", Join([]string{"foo", "Bar"}, Convention("SCREAMING")))
	})
}

func TestRender(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		convention Convention
		want       string
	}{
		{name: "kebab to pascal", input: "this-is-kebab-case", convention: PascalCase, want: "ThisIsKebabCase"},
		{name: "kebab to camel", input: "this-is-kebab-case", convention: CamelCase, want: "thisIsKebabCase"},
		{name: "kebab to snake", input: "this-is-kebab-case", convention: SnakeCase, want: "this_is_kebab_case"},
		{name: "camel to kebab", input: "ThisIsCamelCase", convention: KebabCase, want: "this-is-camel-case"},
		{name: "snake to kebab", input: "this_is_snake_case", convention: KebabCase, want: "this-is-snake-case"},
		{name: "mixed to kebab", input: "This-1-Is_Alre1ady_Mixed", convention: KebabCase, want: "this-1-is-alre1ady-mixed"},
		{name: "acronym to snake", input: "XMLHttpRequest", convention: SnakeCase, want: "xml_http_request"},
		{name: "acronym to camel", input: "XMLHttpRequest", convention: CamelCase, want: "xmlHttpRequest"},
		{name: "screaming to pascal", input: "FOO_BAR", convention: PascalCase, want: "FooBar"},
		{name: "literal untouched", input: "Foo_bar-Baz", convention: Literal, want: "Foo_bar-Baz"},
		{name: "empty", input: "", convention: CamelCase, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.input, tt.convention), "Render(%q, %s)", tt.input, tt.convention)
		})
	}
}

// Rendering an already rendered value in the same convention must not move
// token boundaries.
func TestRender_Idempotent(t *testing.T) {
	inputs := []string{"fooBar", "user_profile", "XMLHttpRequest", "get-user-by-id", "api_v2_client", "isJSON"}

	for _, in := range inputs {
		for _, c := range Conventions() {
			once := Render(in, c)
			twice := Render(once, c)
			assert.Equal(t, once, twice, "Render(Render(%q, %s)) changed", in, c)
			assert.Equal(t, c, Classify(once), "Render(%q, %s) = %q classified differently", in, c, once)
		}
	}
}

func TestConventions(t *testing.T) {
	assert.Equal(t, []Convention{CamelCase, PascalCase, SnakeCase, KebabCase}, Conventions())

	for _, c := range Conventions() {
		assert.True(t, c.IsValid())
	}
	assert.True(t, Literal.IsValid())
	assert.False(t, Convention("").IsValid())
}
