// Package replacer performs case-preserving find and replace.
//
// Given a needle and a replacement, a Replacer searches text for the needle
// rendered in camelCase, PascalCase, snake_case and kebab-case, plus the
// needle exactly as given. Every match is substituted with the replacement
// rendered in the convention that produced the match:
//
//	replacer.Replace("let fooBar = foo_bar + FooBar", "fooBar", "bazQux")
//	// "let bazQux = baz_qux + BazQux"
//
// # Matching
//
// Matches are leftmost-longest: when several surface forms start at the same
// position the longest wins, so "foo_bar_baz" is never half replaced by a
// shorter "foo_bar" variant when a longer one also matches.
//
// # Literal Fallback
//
// Re-casing needs the needle and the replacement to split into the same
// number of tokens (see casing.Tokenize). When they do not, the Replacer
// falls back to exact substring substitution of the needle as given and
// Literal reports true. This is a policy, not an error.
package replacer
