// Package expect describes what the shipped fixture package must
// contain: expected archives, post-extraction structure, standalone
// files, and metadata directories. The built-in defaults mirror the
// bundled data tree; a YAML document can override them for forks of the
// dataset.
package expect

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/fixture"
)

// FileRule requires a file to exist after extraction, optionally with a
// minimum size in bytes.
type FileRule struct {
	Path     string `yaml:"path" json:"path"`
	MinBytes int64  `yaml:"min_bytes" json:"min_bytes"`
}

// GlobRule requires a minimum number of matches for a doublestar pattern
// under the extraction target.
type GlobRule struct {
	Pattern    string `yaml:"pattern" json:"pattern"`
	MinMatches int    `yaml:"min_matches" json:"min_matches"`
}

// StructureRule pins the post-extraction layout for one instrument.
type StructureRule struct {
	Key   string     `yaml:"key" json:"key"`
	Dirs  []string   `yaml:"dirs" json:"dirs,omitempty"`
	Files []FileRule `yaml:"files" json:"files,omitempty"`
	Globs []GlobRule `yaml:"globs" json:"globs,omitempty"`
}

// MetadataRule requires a directory in the data tree to hold a minimum
// number of files matching a name pattern.
type MetadataRule struct {
	Dir        string `yaml:"dir" json:"dir"`
	Pattern    string `yaml:"pattern" json:"pattern"`
	MinMatches int    `yaml:"min_matches" json:"min_matches"`
}

// Document is the full expectation set the verifier checks against.
type Document struct {
	// Archives lists expected zip paths relative to the data root.
	Archives []string `yaml:"archives" json:"archives"`

	// Structure pins post-extraction layouts per instrument key.
	Structure []StructureRule `yaml:"structure" json:"structure"`

	// Standalone lists fixture files that live outside any archive.
	Standalone []string `yaml:"standalone" json:"standalone"`

	// Metadata lists directories that must hold matching files.
	Metadata []MetadataRule `yaml:"metadata" json:"metadata"`
}

// Load reads an expectation document from YAML and validates it. An
// empty path yields the built-in defaults.
func Load(path string) (Document, error) {
	if path == "" {
		return Defaults(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read expectations: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return Document{}, fmt.Errorf("parse expectations yaml: %w", err)
	}

	doc.applyDefaults()
	if err := doc.validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func (doc *Document) applyDefaults() {
	for i := range doc.Structure {
		for j := range doc.Structure[i].Globs {
			if doc.Structure[i].Globs[j].MinMatches == 0 {
				doc.Structure[i].Globs[j].MinMatches = 1
			}
		}
	}
	for i := range doc.Metadata {
		if doc.Metadata[i].Pattern == "" {
			doc.Metadata[i].Pattern = "*.xml"
		}
		if doc.Metadata[i].MinMatches == 0 {
			doc.Metadata[i].MinMatches = 1
		}
	}
}

func (doc Document) validate() error {
	if len(doc.Archives) == 0 {
		return fmt.Errorf("at least one expected archive is required")
	}
	seen := make(map[string]bool, len(doc.Archives))
	for _, path := range doc.Archives {
		if path == "" {
			return fmt.Errorf("archive path cannot be empty")
		}
		if seen[path] {
			return fmt.Errorf("duplicate expected archive: %s", path)
		}
		seen[path] = true
	}

	for _, rule := range doc.Structure {
		if _, err := fixture.Lookup(fixture.Key(rule.Key)); err != nil {
			return fmt.Errorf("structure rule: %w", err)
		}
		for _, file := range rule.Files {
			if file.Path == "" {
				return fmt.Errorf("structure rule %s: file path cannot be empty", rule.Key)
			}
			if file.MinBytes < 0 {
				return fmt.Errorf("structure rule %s: min_bytes cannot be negative", rule.Key)
			}
		}
		for _, g := range rule.Globs {
			if !doublestar.ValidatePattern(g.Pattern) {
				return fmt.Errorf("structure rule %s: invalid glob %q", rule.Key, g.Pattern)
			}
			if g.MinMatches < 1 {
				return fmt.Errorf("structure rule %s: min_matches must be >= 1", rule.Key)
			}
		}
	}

	for _, path := range doc.Standalone {
		if path == "" {
			return fmt.Errorf("standalone path cannot be empty")
		}
	}

	for _, rule := range doc.Metadata {
		if rule.Dir == "" {
			return fmt.Errorf("metadata rule directory cannot be empty")
		}
		if rule.MinMatches < 1 {
			return fmt.Errorf("metadata rule %s: min_matches must be >= 1", rule.Dir)
		}
	}
	return nil
}
