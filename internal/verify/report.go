package verify

// Phase groups checks that must run together. Phases execute in the
// order declared here; CleanState runs strictly before Extraction so
// extraction side effects cannot mask shipped duplicates.
type Phase string

// Verification phases, in execution order.
const (
	PhaseCleanState Phase = "clean-state"
	PhaseArchives   Phase = "archives"
	PhaseExtraction Phase = "extraction"
	PhaseStructure  Phase = "structure"
	PhaseStandalone Phase = "standalone"
	PhaseMetadata   Phase = "metadata"
)

// Phases returns all phases in execution order.
func Phases() []Phase {
	return []Phase{
		PhaseCleanState,
		PhaseArchives,
		PhaseExtraction,
		PhaseStructure,
		PhaseStandalone,
		PhaseMetadata,
	}
}

// Status is the outcome of one check.
type Status string

// Check outcomes.
const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// Result is the outcome of a single integrity check. Detail names the
// missing or invalid path precisely so the packaged data can be fixed.
type Result struct {
	Phase  Phase  `json:"phase"`
	Name   string `json:"name"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Report collects all check results of one verification run.
type Report struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

func (r *Report) pass(phase Phase, name string) {
	r.Results = append(r.Results, Result{Phase: phase, Name: name, Status: StatusPass})
	r.Passed++
}

func (r *Report) fail(phase Phase, name string, detail string) {
	r.Results = append(r.Results, Result{Phase: phase, Name: name, Status: StatusFail, Detail: detail})
	r.Failed++
}
