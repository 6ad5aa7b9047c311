// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"
	"strings"
)

// Argument is a value that may be supplied either as a flag or positionally.
type Argument struct {
	// Name is used in error messages (e.g. "needle").
	Name string
	// Value holds the flag value, or the positional value once filled.
	Value string
	// Set reports whether a value was supplied. An explicitly empty flag
	// ("-r ''") counts as set.
	Set bool
}

// FillPositional hands positional values, in order, to the arguments whose
// flag was not set. Leftover positional values are an error because they can
// only mean an argument was given twice. Arguments that receive nothing keep
// Set == false.
func FillPositional(positional []string, args ...*Argument) error {
	next := 0
	for _, arg := range args {
		if arg.Set {
			continue
		}
		if next >= len(positional) {
			return nil
		}
		arg.Value = positional[next]
		arg.Set = true
		next++
	}

	if next < len(positional) {
		return fmt.Errorf("unexpected positional argument(s) %s: %s already given as flag(s)",
			strings.Join(positional[next:], " "), setNames(args))
	}
	return nil
}

// RequireSet returns an error naming every argument that is still unset.
func RequireSet(args ...*Argument) error {
	var missing []string
	for _, arg := range args {
		if !arg.Set {
			missing = append(missing, arg.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required argument(s): %s", strings.Join(missing, ", "))
}

func setNames(args []*Argument) string {
	var names []string
	for _, arg := range args {
		names = append(names, arg.Name)
	}
	return strings.Join(names, " and ")
}
