package verify

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders the report as an indented JSON document.
type JSONFormatter struct{}

// Format writes the report as JSON followed by a newline.
func (f *JSONFormatter) Format(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
