// Package logging builds the diagnostics logger shared by the commands.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every diagnostic.
const Prefix = "vivid"

// New returns a logger writing to w. Warnings are always shown, debug output
// only when verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: false,
	})
}
