// Package config loads recase settings from a YAML file.
//
// A config file lets a project keep its exclusion lists next to the code:
//
//	# .recase.yaml
//	exclude_dirs: [".git", "node_modules", "vendor"]
//	exclude_extensions: ["png", "*.min.js"]
//	files: true
//
// Fields that are absent leave the corresponding setting alone. Unknown keys
// are rejected so that typos do not silently disable an exclusion.
package config

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/erraggy/recase/recaseerrors"
	"github.com/erraggy/recase/renamer"
	"go.yaml.in/yaml/v4"
)

// DefaultFileName is the conventional config file name.
const DefaultFileName = ".recase.yaml"

// File is the on-disk configuration.
type File struct {
	ExcludeDirs       []string `yaml:"exclude_dirs,omitempty"`
	ExcludeExtensions []string `yaml:"exclude_extensions,omitempty"`
	// Files enables content rewriting. A pointer distinguishes "false" from
	// "not set".
	Files *bool `yaml:"files,omitempty"`
}

var knownKeys = []string{"exclude_dirs", "exclude_extensions", "files"}

// Load reads and parses the config file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304 - path is supplied by the user on purpose
	if err != nil {
		return nil, &recaseerrors.ConfigError{Option: "config", Value: path, Message: "cannot read config file", Cause: err}
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML config data. Empty data yields an empty File.
func Parse(data []byte) (*File, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &recaseerrors.ConfigError{Option: "config", Message: "invalid YAML", Cause: err}
	}

	var unknown []string
	for key := range raw {
		if !slices.Contains(knownKeys, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &recaseerrors.ConfigError{
			Option:  "config",
			Value:   unknown,
			Message: fmt.Sprintf("unknown key(s); valid keys: %v", knownKeys),
		}
	}

	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, &recaseerrors.ConfigError{Option: "config", Message: "invalid field value", Cause: err}
	}
	return f, nil
}

// Apply overlays the file's settings onto cfg. Lists replace, they do not
// append, matching how repeated CLI flags behave.
func (f *File) Apply(cfg *renamer.Config) {
	if f == nil || cfg == nil {
		return
	}
	if f.ExcludeDirs != nil {
		cfg.ExcludedDirs = slices.Clone(f.ExcludeDirs)
	}
	if f.ExcludeExtensions != nil {
		cfg.ExcludedExtensions = slices.Clone(f.ExcludeExtensions)
	}
	if f.Files != nil {
		cfg.IncludeContents = *f.Files
	}
}
