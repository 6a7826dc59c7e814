// Package domain contains the core domain types for the completion pipeline.
package domain

// Stage identifies the pipeline stage a compiler invocation belongs to.
type Stage int

const (
	// StageIdle indicates no completion run is in flight.
	StageIdle Stage = iota
	// StagePreProcess runs the preprocessor to discover the headers visible
	// to the editing buffer.
	StagePreProcess
	// StageCreatePCH compiles the synthesized header into a precompiled header.
	StageCreatePCH
	// StageCodeComplete requests completion candidates at the cursor location.
	StageCodeComplete
)

// String returns the stage name used in logs and trace spans.
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StagePreProcess:
		return "pre-process"
	case StageCreatePCH:
		return "create-pch"
	case StageCodeComplete:
		return "code-completion"
	default:
		return "unknown"
	}
}
