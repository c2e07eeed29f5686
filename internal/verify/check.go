// Package verify asserts that the shipped fixture package is
// self-consistent: every expected archive exists and is a valid zip,
// extraction is idempotent, and extracted trees, standalone files, and
// metadata directories match the expectation document.
package verify

import (
	"io/fs"

	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/expect"
	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/fixture"
	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/log"
)

// Checker runs the integrity suite against a data tree.
//
// Checks are stateless filesystem assertions grouped into phases. The
// clean-state phase executes strictly before the extraction phase:
// extraction is a side effect that would otherwise mask the shipped
// duplicates it is meant to catch. Failures are collected into the
// report rather than aborting the run.
type Checker struct {
	// Data is the fixture tree under test.
	Data fs.FS

	// Store performs extractions for the extraction and structure
	// phases. Its source should be Data and its cache directory should
	// be disposable.
	Store *fixture.Store

	// Expect is the expectation document to check against.
	Expect expect.Document

	// Log receives verbose diagnostics. May be nil.
	Log *log.Logger
}

// Run executes every phase in order and returns the collected report.
func (c *Checker) Run() *Report {
	report := &Report{}
	for _, phase := range Phases() {
		c.Log.Printf("verify: phase %s", phase)
		switch phase {
		case PhaseCleanState:
			c.checkCleanState(report)
		case PhaseArchives:
			c.checkArchives(report)
		case PhaseExtraction:
			c.checkExtraction(report)
		case PhaseStructure:
			c.checkStructure(report)
		case PhaseStandalone:
			c.checkStandalone(report)
		case PhaseMetadata:
			c.checkMetadata(report)
		}
	}
	return report
}
