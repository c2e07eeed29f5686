// Package log provides the verbose diagnostics logger shared by the
// fixture store, the verifier, and fixturectl.
package log

import (
	"fmt"
	"io"
)

// Logger writes diagnostic messages when Enabled is true. Output goes to
// the configured writer, typically stderr.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// Printf writes a formatted line to W when Enabled is true. A nil
// receiver or disabled logger is a no-op, so callers may leave the
// logger unset.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled || l.W == nil {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
