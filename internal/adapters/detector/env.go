// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how completion candidates are printed.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModePretty uses styled, colored candidate output.
	ModePretty
	// ModePlain emits raw compiler output, suitable for piping.
	ModePlain
)

// DetectEnvironment returns the recommended output mode based on the
// environment. It checks if stdout is a TTY and if CI environment
// variables are set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePlain
	}
	return ModePretty
}

// ResolveMode applies the user override flag to auto-detection.
// userFlag should be one of: "auto", "pretty", "plain", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "pretty":
		return ModePretty
	case "plain":
		return ModePlain
	default:
		return autoDetected
	}
}
