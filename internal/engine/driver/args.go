package driver

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.trai.ch/clank/internal/core/domain"
	"go.trai.ch/clank/internal/core/ports"
	"go.trai.ch/zerr"
)

// incompatibleFlags are flags known to break the clang completion front-end.
// They are removed from the final argument list by literal substring
// replacement; the patterns do not overlap, so removal order is irrelevant.
var incompatibleFlags = []string{
	"-fno-strict-aliasing",
	"-mthreads",
	"-pipe",
	"-fmessage-length=0",
	"-g",
	"-fPIC",
}

// argBuilder synthesizes the compiler argument list for a project from the
// workspace's build configuration. The standard-include cache and the
// backtick memo table live for the builder's lifetime and are append-only.
type argBuilder struct {
	workspace ports.Workspace
	locator   ports.IncludeLocator
	runner    ports.Runner
	logger    ports.Logger

	mu          sync.Mutex
	stdIncludes map[string][]string // binary -> -I flags
	backticks   map[string]string   // expression -> expansion
}

func newArgBuilder(
	workspace ports.Workspace,
	locator ports.IncludeLocator,
	runner ports.Runner,
	logger ports.Logger,
) *argBuilder {
	return &argBuilder{
		workspace:   workspace,
		locator:     locator,
		runner:      runner,
		logger:      logger,
		stdIncludes: make(map[string][]string),
		backticks:   make(map[string]string),
	}
}

// Build assembles the argument list for project using binary. Missing
// workspace, project, or build configuration and custom builds are reported
// as domain errors; the caller treats them as silent preconditions.
func (b *argBuilder) Build(ctx context.Context, project, binary, dir string) ([]string, error) {
	args, err := b.standardIncludeArgs(ctx, binary)
	if err != nil {
		return nil, err
	}

	if !b.workspace.IsOpen() {
		return nil, domain.ErrNoWorkspace
	}

	workspaceConf := b.workspace.SelectedConfiguration()
	conf, err := b.workspace.ProjectBuildConfig(project, workspaceConf)
	if err != nil {
		return nil, err
	}
	if conf.CustomBuild {
		return nil, zerr.With(domain.ErrCustomBuild, "project", project)
	}

	env := b.workspace.Environment(project)

	for _, inc := range domain.SplitField(conf.IncludePath) {
		args = append(args, "-I"+inc)
	}

	for _, opt := range domain.SplitField(conf.CompileOptions) {
		expanded, err := b.expandOption(ctx, opt, dir, env)
		if err != nil {
			return nil, err
		}
		args = append(args, expanded)
	}

	for _, def := range domain.SplitField(conf.Preprocessor) {
		args = append(args, "-D"+def)
	}

	return stripIncompatibleFlags(args), nil
}

// Reset clears the memo tables. Intended for tests; the tables are
// otherwise append-only for the process lifetime.
func (b *argBuilder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stdIncludes = make(map[string][]string)
	b.backticks = make(map[string]string)
}

// standardIncludeArgs returns the -I flags for the binary's standard system
// include paths. The first call per binary locates them; subsequent calls
// return the memoized list.
func (b *argBuilder) standardIncludeArgs(ctx context.Context, binary string) ([]string, error) {
	b.mu.Lock()
	if cached, ok := b.stdIncludes[binary]; ok {
		b.mu.Unlock()
		return append([]string(nil), cached...), nil
	}
	b.mu.Unlock()

	paths, err := b.locator.Locate(ctx, binary)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrIncludeLocateFailed.Error())
	}

	flags := make([]string, 0, len(paths))
	for _, p := range paths {
		flags = append(flags, "-I"+p)
	}

	b.mu.Lock()
	b.stdIncludes[binary] = flags
	b.mu.Unlock()

	return append([]string(nil), flags...), nil
}

// expandOption expands a $(shell ...) or backtick-quoted compile option via
// the runner, memoizing the result. Plain options pass through untouched.
func (b *argBuilder) expandOption(ctx context.Context, opt, dir string, env []string) (string, error) {
	expr, ok := shellExpression(opt)
	if !ok {
		return opt, nil
	}

	b.mu.Lock()
	if cached, hit := b.backticks[expr]; hit {
		b.mu.Unlock()
		return cached, nil
	}
	b.mu.Unlock()

	lines, err := b.runner.Run(ctx, expr, dir, env)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrBacktickFailed, err), "expression", expr)
	}
	expanded := strings.Join(lines, " ")

	b.mu.Lock()
	b.backticks[expr] = expanded
	b.mu.Unlock()

	return expanded, nil
}

// shellExpression extracts the inner expression from a `expr` or
// $(shell expr) compile option. ok is false for plain options.
func shellExpression(opt string) (expr string, ok bool) {
	opt = strings.TrimSpace(opt)
	switch {
	case strings.HasPrefix(opt, "$(shell "):
		expr = strings.TrimPrefix(opt, "$(shell ")
		expr = strings.TrimSuffix(expr, ")")
		return strings.TrimSpace(expr), true
	case strings.HasPrefix(opt, "`"):
		expr = strings.TrimPrefix(opt, "`")
		expr = strings.TrimSuffix(expr, "`")
		return strings.TrimSpace(expr), true
	default:
		return "", false
	}
}

// stripIncompatibleFlags removes the known-incompatible flags from args by
// literal substring replacement, dropping arguments that become empty.
func stripIncompatibleFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		for _, flag := range incompatibleFlags {
			arg = strings.ReplaceAll(arg, flag, "")
		}
		arg = strings.TrimSpace(arg)
		if arg != "" {
			out = append(out, arg)
		}
	}
	return out
}
