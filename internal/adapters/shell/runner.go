package shell

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/clank/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner through the system shell. It backs
// backtick expansion of compile options and include-path discovery.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes command through `sh -c` in dir with env appended to the
// process environment, and returns its non-empty output lines.
func (r *Runner) Run(ctx context.Context, command, dir string, env []string) ([]string, error) {
	c := exec.CommandContext(ctx, "sh", "-c", command) //nolint:gosec // expansion expression from the workspace configuration
	c.Dir = dir
	c.Env = append(os.Environ(), env...)

	out, err := c.Output()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "command failed"), "command", command)
	}

	var lines []string
	for line := range strings.Lines(string(out)) {
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
