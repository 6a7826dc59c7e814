package domain

import (
	"fmt"
	"strings"
)

// Command is a fully resolved compiler invocation for one pipeline stage.
// Arguments are kept as a structured argv list so that substituted values
// can never bleed into one another.
type Command struct {
	// Stage the invocation belongs to.
	Stage Stage
	// Binary is the compiler executable.
	Binary string
	// Args is the argument vector passed after the binary.
	Args []string
	// Dir is the working directory for the invocation.
	Dir string
	// CaptureFile, when non-empty, receives the combined stdout and stderr
	// of the invocation instead of the in-memory output buffer.
	CaptureFile string
}

// Argv returns the full argument vector including the binary.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Binary)
	argv = append(argv, c.Args...)
	return argv
}

// String renders the command for logging. Embedded newlines and carriage
// returns are collapsed to spaces so the command always logs as one line.
func (c Command) String() string {
	s := strings.Join(c.Argv(), " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// Location is a cursor position in a file. Line and Column are 1-based.
type Location struct {
	File   string
	Line   int
	Column int
}

// Token renders the location in the file:line:column form consumed by the
// completion command.
func (l Location) Token() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
