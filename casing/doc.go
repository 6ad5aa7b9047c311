// Package casing classifies identifier-like strings by casing convention and
// renders token sequences in a chosen convention.
//
// Four conventions take part in re-casing: camelCase, PascalCase, snake_case
// and kebab-case. Anything else is Literal and is used verbatim.
//
// # Classification
//
// Classify applies an ordered predicate list; the first match wins because the
// predicates overlap (for example "Foo_Bar" starts uppercase and contains an
// underscore):
//
//  1. contains '_'           -> SnakeCase
//  2. contains '-'           -> KebabCase
//  3. first rune uppercase   -> PascalCase
//  4. first rune lowercase   -> CamelCase
//  5. anything else          -> Literal
//
// # Tokens
//
// Tokenize splits on '_' and '-' and on capitalization transitions. Runs of
// uppercase letters stay together as an acronym:
//
//	Tokenize("XMLHttpRequest") // [XML Http Request]
//	Tokenize("user_id")        // [user id]
//	Tokenize("isJSON")         // [is JSON]
//
// Join and Render turn tokens back into a single string:
//
//	casing.Render("user_profile", casing.PascalCase) // "UserProfile"
//	casing.Render("UserProfile", casing.KebabCase)   // "user-profile"
package casing
