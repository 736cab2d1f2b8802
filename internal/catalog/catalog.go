// Package catalog loads named pattern collections from YAML or JSON files.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrNoPatterns is returned when a load yields no patterns at all.
var ErrNoPatterns = errors.New("no patterns found")

// Catalog is a named collection of patterns.
type Catalog struct {
	Package  string  `yaml:"package" json:"package"`
	Patterns []Entry `yaml:"patterns" json:"patterns"`
}

// Entry is a single named pattern.
type Entry struct {
	Name        string `yaml:"name" json:"name"`
	Pattern     string `yaml:"pattern" json:"pattern"`
	Flags       string `yaml:"flags,omitempty" json:"flags,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Source is the file the entry was loaded from.
	Source string `yaml:"-" json:"-"`
}

// Parse decodes catalog data. ext selects the format: .yaml and .yml are
// YAML, .json and .jsonc are JSON with comments allowed.
func Parse(data []byte, ext string) (*Catalog, error) {
	cat := &Catalog{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cat); err != nil {
			return nil, err
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), cat); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	return cat, nil
}

// Load reads a single catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cat, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i := range cat.Patterns {
		cat.Patterns[i].Source = path
	}
	return cat, nil
}

// LoadGlob expands each glob (doublestar syntax, relative to rootDir unless
// absolute), loads every matching file and merges the results. The package
// name is taken from the first file that declares one. Duplicate pattern
// names are an error.
func LoadGlob(rootDir string, globs ...string) (*Catalog, error) {
	paths, err := expand(rootDir, globs)
	if err != nil {
		return nil, err
	}

	merged := &Catalog{}
	seen := make(map[string]string)

	for _, path := range paths {
		cat, err := Load(path)
		if err != nil {
			return nil, err
		}
		if merged.Package == "" {
			merged.Package = cat.Package
		}
		for _, e := range cat.Patterns {
			if prev, ok := seen[e.Name]; ok {
				return nil, fmt.Errorf("duplicate pattern name %q in %s (first defined in %s)", e.Name, path, prev)
			}
			seen[e.Name] = path
			merged.Patterns = append(merged.Patterns, e)
		}
	}

	if len(merged.Patterns) == 0 {
		return nil, ErrNoPatterns
	}
	return merged, nil
}

// expand resolves globs to a sorted, de-duplicated list of files.
func expand(rootDir string, globs []string) ([]string, error) {
	unique := make(map[string]bool)

	for _, pattern := range globs {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(rootDir, pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			unique[m] = true
		}
	}

	paths := make([]string, 0, len(unique))
	for p := range unique {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}

// Validate checks that every entry has a name and a pattern.
func (c *Catalog) Validate() error {
	for i, e := range c.Patterns {
		if e.Name == "" {
			return fmt.Errorf("pattern %d: name cannot be empty", i)
		}
		if e.Pattern == "" {
			return fmt.Errorf("pattern %q: pattern cannot be empty", e.Name)
		}
	}
	return nil
}
