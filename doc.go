// Package recase renames files, directories and identifiers across a source
// tree while keeping the casing convention of every occurrence.
//
// The module is split into small packages that can be used on their own:
//
//   - casing: classify a string as camelCase, PascalCase, snake_case or
//     kebab-case and render token sequences in any of them
//   - replacer: case-preserving find and replace over arbitrary text
//   - renamer: walk a directory tree, rename matching paths deepest-first and
//     optionally rewrite text file contents
//   - recaseerrors: structured error types for errors.Is and errors.As
//
// # Quick Start
//
// Replace every casing of a name in a string:
//
//	out := replacer.Replace("let fooBar = foo_bar + FooBar", "fooBar", "bazQux")
//	// out == "let bazQux = baz_qux + BazQux"
//
// Preview a rename across a tree:
//
//	result, err := renamer.RunWithOptions(
//	    renamer.WithRoot("./project"),
//	    renamer.WithNeedle("fooBar"),
//	    renamer.WithReplacement("bazQux"),
//	    renamer.WithIncludeContents(true),
//	    renamer.WithDryRun(true),
//	)
//
// The recase command in cmd/recase wraps the renamer with a CLI and can also
// serve the same operations as MCP tools.
package recase
