package commands

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DirectoryArgs rewrites args so that a leading positional argument naming
// both a subcommand and an existing directory is taken as the rename root.
// This only happens when a needle and replacement are also supplied,
// positionally or with -n/-r; otherwise the subcommand runs. The directory
// is rewritten to ./<name>, which cobra never resolves to a subcommand.
func DirectoryArgs(root *cobra.Command, args []string) []string {
	positional, named := scanArgs(root, args)
	if len(positional) == 0 {
		return args
	}
	first := positional[0]
	name := args[first]
	if !isSubcommand(root, name) {
		return args
	}
	supplied := len(positional) - 1
	for _, f := range []string{"needle", "replacement"} {
		if named[f] {
			supplied++
		}
	}
	if supplied < 2 {
		return args
	}
	if info, err := os.Stat(name); err != nil || !info.IsDir() {
		return args
	}

	out := slices.Clone(args)
	out[first] = "." + string(filepath.Separator) + name
	return out
}

// scanArgs returns the indices of positional arguments in args and the long
// names of the root flags that were given. A "--" terminator ends the scan:
// cobra never dispatches a subcommand after it.
func scanArgs(root *cobra.Command, args []string) ([]int, map[string]bool) {
	var positional []int
	named := make(map[string]bool)
	for i := 0; i < len(args); i++ {
		s := args[i]
		switch {
		case s == "--":
			return positional, named
		case strings.HasPrefix(s, "--"):
			name, _, hasValue := strings.Cut(s[2:], "=")
			f := lookupFlag(root, name)
			if f == nil {
				continue
			}
			named[f.Name] = true
			if !hasValue && f.NoOptDefVal == "" {
				i++
			}
		case strings.HasPrefix(s, "-") && len(s) > 1:
			shorthands := s[1:]
			for j := 0; j < len(shorthands); j++ {
				f := lookupShorthand(root, shorthands[j:j+1])
				if f == nil {
					break
				}
				named[f.Name] = true
				if f.NoOptDefVal == "" {
					// The value is the rest of this argument or the next one.
					if j == len(shorthands)-1 {
						i++
					}
					break
				}
			}
		default:
			positional = append(positional, i)
		}
	}
	return positional, named
}

func lookupFlag(root *cobra.Command, name string) *pflag.Flag {
	if f := root.Flags().Lookup(name); f != nil {
		return f
	}
	return root.PersistentFlags().Lookup(name)
}

func lookupShorthand(root *cobra.Command, name string) *pflag.Flag {
	if f := root.Flags().ShorthandLookup(name); f != nil {
		return f
	}
	return root.PersistentFlags().ShorthandLookup(name)
}

// isSubcommand reports whether name would be dispatched to a subcommand,
// including the help and completion commands cobra adds itself.
func isSubcommand(root *cobra.Command, name string) bool {
	if name == "help" || name == "completion" {
		return true
	}
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}
