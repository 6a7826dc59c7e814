package ports

import "context"

// Runner executes a shell command synchronously and captures its output.
// It backs backtick expansion in compile options and standard include-path
// discovery.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes command through the shell in dir with env appended to
	// the process environment, returning the command's output lines.
	Run(ctx context.Context, command, dir string, env []string) ([]string, error)
}
