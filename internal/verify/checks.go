package verify

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"

	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/expect"
	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/fixture"
)

// checkCleanState verifies no archive's top-level directory exists
// pre-extracted next to the zip. Such a directory means the package
// ships content both zipped and unpacked.
func (c *Checker) checkCleanState(report *Report) {
	for _, arc := range fixture.Catalog() {
		for _, top := range arc.TopDirs {
			stray := path.Join(arc.Dir(), top)
			name := fmt.Sprintf("no stray %s", stray)
			info, err := fs.Stat(c.Data, stray)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				report.pass(PhaseCleanState, name)
			case err != nil:
				report.fail(PhaseCleanState, name, fmt.Sprintf("stat %s: %v", stray, err))
			case info.IsDir():
				report.fail(PhaseCleanState, name,
					fmt.Sprintf("%s exists outside its archive; it must only live inside %s", stray, arc.ZipPath))
			default:
				report.pass(PhaseCleanState, name)
			}
		}
	}
}

// checkArchives verifies every expected zip is present and opens as a
// valid archive.
func (c *Checker) checkArchives(report *Report) {
	for _, zipPath := range c.Expect.Archives {
		name := fmt.Sprintf("archive %s", zipPath)
		info, err := fs.Stat(c.Data, zipPath)
		if err != nil {
			report.fail(PhaseArchives, name, fmt.Sprintf("missing zip file: %s", zipPath))
			continue
		}
		if info.IsDir() {
			report.fail(PhaseArchives, name, fmt.Sprintf("not a file: %s", zipPath))
			continue
		}
		if !fixture.IsValidZip(c.Data, zipPath) {
			report.fail(PhaseArchives, name, fmt.Sprintf("not a valid zip: %s", zipPath))
			continue
		}
		report.pass(PhaseArchives, name)
	}
}

// checkExtraction verifies Path is error-free and idempotent for every
// bundled key: two calls, no failure, same directory both times.
func (c *Checker) checkExtraction(report *Report) {
	for _, key := range fixture.Keys() {
		name := fmt.Sprintf("extract %s", key)
		first, err := c.Store.Path(key)
		if err != nil {
			report.fail(PhaseExtraction, name, err.Error())
			continue
		}
		second, err := c.Store.Path(key)
		if err != nil {
			report.fail(PhaseExtraction, name, fmt.Sprintf("second call: %v", err))
			continue
		}
		if first != second {
			report.fail(PhaseExtraction, name,
				fmt.Sprintf("path changed between calls: %s then %s", first, second))
			continue
		}
		if info, err := os.Stat(first); err != nil || !info.IsDir() {
			report.fail(PhaseExtraction, name, fmt.Sprintf("not a directory: %s", first))
			continue
		}
		report.pass(PhaseExtraction, name)
	}
}

// checkStructure verifies the post-extraction layout rules.
func (c *Checker) checkStructure(report *Report) {
	for _, rule := range c.Expect.Structure {
		base, err := c.Store.Path(fixture.Key(rule.Key))
		if err != nil {
			report.fail(PhaseStructure, fmt.Sprintf("structure %s", rule.Key), err.Error())
			continue
		}
		c.checkStructureRule(report, rule, base)
	}
}

func (c *Checker) checkStructureRule(report *Report, rule expect.StructureRule, base string) {
	for _, dir := range rule.Dirs {
		name := fmt.Sprintf("%s has directory %s", rule.Key, dir)
		info, err := os.Stat(filepath.Join(base, filepath.FromSlash(dir)))
		switch {
		case err != nil:
			report.fail(PhaseStructure, name, fmt.Sprintf("%s not found after extraction", dir))
		case !info.IsDir():
			report.fail(PhaseStructure, name, fmt.Sprintf("%s is not a directory", dir))
		default:
			report.pass(PhaseStructure, name)
		}
	}

	for _, file := range rule.Files {
		name := fmt.Sprintf("%s has file %s", rule.Key, file.Path)
		info, err := os.Stat(filepath.Join(base, filepath.FromSlash(file.Path)))
		switch {
		case err != nil:
			report.fail(PhaseStructure, name, fmt.Sprintf("%s not found after extraction", file.Path))
		case info.IsDir():
			report.fail(PhaseStructure, name, fmt.Sprintf("%s is not a file", file.Path))
		case info.Size() < file.MinBytes:
			report.fail(PhaseStructure, name,
				fmt.Sprintf("%s is %d bytes, expected at least %d", file.Path, info.Size(), file.MinBytes))
		default:
			report.pass(PhaseStructure, name)
		}
	}

	for _, rulePattern := range rule.Globs {
		name := fmt.Sprintf("%s matches %s", rule.Key, rulePattern.Pattern)
		matches, err := doublestar.Glob(os.DirFS(base), rulePattern.Pattern)
		switch {
		case err != nil:
			report.fail(PhaseStructure, name, fmt.Sprintf("glob %s: %v", rulePattern.Pattern, err))
		case len(matches) < rulePattern.MinMatches:
			report.fail(PhaseStructure, name,
				fmt.Sprintf("%d matches for %s, expected at least %d", len(matches), rulePattern.Pattern, rulePattern.MinMatches))
		default:
			report.pass(PhaseStructure, name)
		}
	}
}

// checkStandalone verifies fixture files that live outside any archive.
func (c *Checker) checkStandalone(report *Report) {
	for _, file := range c.Expect.Standalone {
		name := fmt.Sprintf("standalone %s", file)
		info, err := fs.Stat(c.Data, file)
		switch {
		case err != nil:
			report.fail(PhaseStandalone, name, fmt.Sprintf("missing standalone file: %s", file))
		case info.IsDir():
			report.fail(PhaseStandalone, name, fmt.Sprintf("not a file: %s", file))
		default:
			report.pass(PhaseStandalone, name)
		}
	}
}

// checkMetadata verifies each metadata directory holds enough matching
// files.
func (c *Checker) checkMetadata(report *Report) {
	for _, rule := range c.Expect.Metadata {
		name := fmt.Sprintf("metadata %s (%s)", rule.Dir, rule.Pattern)
		entries, err := fs.ReadDir(c.Data, rule.Dir)
		if err != nil {
			report.fail(PhaseMetadata, name, fmt.Sprintf("missing directory: %s", rule.Dir))
			continue
		}

		matcher, err := glob.Compile(rule.Pattern)
		if err != nil {
			report.fail(PhaseMetadata, name, fmt.Sprintf("invalid pattern %q: %v", rule.Pattern, err))
			continue
		}
		count := 0
		for _, entry := range entries {
			if !entry.IsDir() && matcher.Match(entry.Name()) {
				count++
			}
		}
		if count < rule.MinMatches {
			report.fail(PhaseMetadata, name,
				fmt.Sprintf("%d files matching %s in %s, expected at least %d", count, rule.Pattern, rule.Dir, rule.MinMatches))
			continue
		}
		report.pass(PhaseMetadata, name)
	}
}
