// Package detector provides environment detection for output rendering.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Interactive reports whether the process renders for a human. It checks
// that standard error is a terminal and that no CI environment variable is
// set. Non-interactive runs get the reduced ANSI color profile.
func Interactive() bool {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return false
	}

	ci := os.Getenv("CI")
	return ci != "true" && ci != "1"
}
