package verify

import (
	"fmt"
	"io"
)

// Formatter defines the interface for rendering a verification report.
type Formatter interface {
	Format(w io.Writer, report *Report) error
}

// TextFormatter renders one line per check in the pattern:
// status phase name [detail]. When Color is true, pass is printed in
// green and fail in red. When Verbose is false, passing checks are
// summarized instead of listed.
type TextFormatter struct {
	Color   bool
	Verbose bool
}

// Format writes the report as human-readable text.
func (f *TextFormatter) Format(w io.Writer, report *Report) error {
	for _, result := range report.Results {
		if result.Status == StatusPass && !f.Verbose {
			continue
		}
		if err := f.formatResult(w, result); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d passed, %d failed\n", report.Passed, report.Failed)
	return err
}

func (f *TextFormatter) formatResult(w io.Writer, result Result) error {
	detail := ""
	if result.Detail != "" {
		detail = " " + result.Detail
	}
	var err error
	if f.Color {
		code := "\033[32m" // green
		if result.Status == StatusFail {
			code = "\033[31m" // red
		}
		_, err = fmt.Fprintf(w, "%s%s\033[0m \033[36m%s\033[0m %s%s\n",
			code, result.Status, result.Phase, result.Name, detail)
	} else {
		_, err = fmt.Fprintf(w, "%s %s %s%s\n", result.Status, result.Phase, result.Name, detail)
	}
	return err
}
