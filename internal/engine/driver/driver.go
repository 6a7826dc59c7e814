// Package driver implements the clang completion pipeline: preprocessing
// the editing buffer, building and caching a precompiled header, and
// requesting completion candidates at the cursor location, each as an
// out-of-process compiler invocation.
package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/clank/internal/core/domain"
	"go.trai.ch/clank/internal/core/ports"
	"go.trai.ch/zerr"
)

// defaultClangBinary is used when the workspace does not configure one.
const defaultClangBinary = "clang"

// Driver orchestrates the completion pipeline. At most one compiler
// process is outstanding at any time; a request arriving while a run is in
// flight is dropped, not queued. Stage transitions are continuations driven
// by the process's event channel.
type Driver struct {
	workspace ports.Workspace
	launcher  ports.Launcher
	consumer  ports.Consumer
	logger    ports.Logger
	tracer    ports.Tracer

	cache *PCHCache
	args  *argBuilder

	mu              sync.Mutex
	stage           domain.Stage
	proc            ports.Process
	span            ports.Span
	editor          ports.Editor
	activationPos   int
	output          bytes.Buffer
	compArgs        []string
	argsBuilt       bool
	removedIncludes []string
	pchHeaders      []string
}

// Option configures a Driver.
type Option func(*Driver)

// WithCacheDir overrides the PCH cache directory. Used by tests and the
// --cache-dir flag.
func WithCacheDir(dir string) Option {
	return func(d *Driver) {
		d.cache = NewPCHCache(dir)
	}
}

// New creates a Driver wired to its collaborators.
func New(
	workspace ports.Workspace,
	launcher ports.Launcher,
	runner ports.Runner,
	locator ports.IncludeLocator,
	consumer ports.Consumer,
	logger ports.Logger,
	tracer ports.Tracer,
	opts ...Option,
) *Driver {
	d := &Driver{
		workspace:     workspace,
		launcher:      launcher,
		consumer:      consumer,
		logger:        logger,
		tracer:        tracer,
		cache:         NewPCHCache(""),
		args:          newArgBuilder(workspace, locator, runner, logger),
		stage:         domain.StageIdle,
		activationPos: -1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Cache exposes the PCH cache, for the cache subcommand and tests.
func (d *Driver) Cache() *PCHCache {
	return d.cache
}

// Stage returns the currently active pipeline stage.
func (d *Driver) Stage() domain.Stage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stage
}

// Busy reports whether a completion run is in flight.
func (d *Driver) Busy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.proc != nil
}

// ResetCaches clears the PCH cache and the argument builder's memo tables.
// Intended for test setup and the cache subcommand.
func (d *Driver) ResetCaches() {
	d.cache.Clear()
	d.args.Reset()
}

// RequestCompletion starts a completion run for the editor's current cursor
// position. The request is dropped, with a debug log, when the editor is
// nil, completion is disabled, or another run is already in flight. The
// final compiler output is delivered to the consumer.
func (d *Driver) RequestCompletion(ctx context.Context, editor ports.Editor) {
	if editor == nil {
		d.logger.Warn(domain.ErrNilEditor.Error())
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.proc != nil {
		d.logger.Debug(domain.ErrDriverBusy.Error())
		return
	}

	if !d.workspace.CompletionEnabled() {
		d.logger.Debug(domain.ErrCompletionDisabled.Error())
		return
	}

	// Start clean.
	d.cleanupLocked()
	d.compArgs = nil
	d.argsBuilt = false
	d.removedIncludes = nil
	d.editor = editor

	entry := d.cache.Lookup(editor.FileName())
	buffer := editor.TextRange(0, editor.CurrentPosition())
	_, removed := StripIncludes(buffer)

	if d.cache.IsValid(entry) && !d.cache.NeedsRegeneration(entry, removed) {
		d.logger.Debug("valid PCH cache entry for " + filepath.Base(editor.FileName()))
		d.launchStageLocked(ctx, domain.StageCodeComplete)
		return
	}

	d.launchStageLocked(ctx, domain.StagePreProcess)
}

// Abort cancels any in-flight run, terminates the active process, clears
// activation state, and returns the driver to idle. It is safe to call at
// any stage, including idle.
func (d *Driver) Abort() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.editor = nil
	d.activationPos = -1
	d.pchHeaders = nil
	d.removedIncludes = nil
	d.compArgs = nil
	d.argsBuilt = false
	d.cleanupLocked()
}

// launchStageLocked performs the per-stage launch sequence. d.mu must be
// held. Precondition failures log at debug level and return the driver to
// idle without surfacing an error.
func (d *Driver) launchStageLocked(ctx context.Context, stage domain.Stage) {
	if d.editor == nil || !d.workspace.IsOpen() {
		d.logger.Debug(domain.ErrNoWorkspace.Error())
		d.cleanupLocked()
		return
	}
	d.stage = stage

	binary := strings.TrimSpace(d.workspace.ClangBinary())
	if binary == "" {
		binary = defaultClangBinary
	}

	source := d.editor.FileName()
	dir := filepath.Dir(source)

	if !d.argsBuilt {
		args, err := d.args.Build(ctx, d.editor.ProjectName(), binary, dir)
		if err != nil {
			d.logger.Debug("skipping completion: " + err.Error())
			d.cleanupLocked()
			return
		}
		d.compArgs = args
		d.argsBuilt = true
	}

	buffer := d.editor.TextRange(0, d.editor.CurrentPosition())
	if buffer == "" {
		d.logger.Debug(domain.ErrEmptyBuffer.Error())
		d.cleanupLocked()
		return
	}

	if stage == domain.StagePreProcess {
		_, removed := StripIncludes(buffer)
		d.removedIncludes = removed
	}

	prefix := identifierPrefix(buffer)

	lineStart := d.editor.PositionFromLine(d.editor.CurrentLine())
	line := d.editor.CurrentLine() + 1
	column := d.editor.CurrentPosition() - lineStart + 1 - len(prefix)

	b := commandBuilder{
		binary:   binary,
		args:     d.compArgs,
		dir:      dir,
		cacheDir: d.cache.Dir(),
	}

	var cmd domain.Command
	switch stage {
	case domain.StagePreProcess:
		if err := d.cache.EnsureDir(); err != nil {
			d.logger.Error(err)
			d.cleanupLocked()
			return
		}
		cmd = b.preProcess(source)

	case domain.StageCreatePCH:
		cmd = b.createPCH(source)

	case domain.StageCodeComplete:
		probe := domain.ProbePath(source)
		loc, err := writeProbe(probe, source, buffer, line, column)
		if err != nil {
			d.logger.Error(err)
			d.cleanupLocked()
			return
		}
		cmd = b.codeComplete(source, filepath.Base(probe), loc)

	default:
		d.cleanupLocked()
		return
	}

	d.logger.Debug("running: " + cmd.String())

	_, span := d.tracer.Start(ctx, "clang."+stage.String())
	span.SetAttribute("file", source)

	proc, err := d.launcher.Launch(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		span.End()
		d.logger.Error(zerr.Wrap(err, domain.ErrLaunchFailed.Error()))
		d.cleanupLocked()
		return
	}

	d.span = span
	d.proc = proc
	d.activationPos = lineStart + column - 1

	go d.collect(ctx, proc)
}

// collect accumulates process output and dispatches the stage continuation
// once the termination event arrives. One collector runs per launched
// process; a collector for an aborted process drains and exits.
func (d *Driver) collect(ctx context.Context, proc ports.Process) {
	for ev := range proc.Events() {
		if ev.Terminated {
			d.onTerminated(ctx, proc, ev)
			return
		}
		d.mu.Lock()
		if d.proc == proc {
			d.output.Write(ev.Data)
		}
		d.mu.Unlock()
	}
}

// onTerminated advances the pipeline when the active process exits.
func (d *Driver) onTerminated(ctx context.Context, proc ports.Process, ev ports.Event) {
	d.mu.Lock()

	if d.proc != proc {
		// The run was aborted while the event was in flight.
		d.mu.Unlock()
		return
	}

	if ev.Err != nil {
		// clang exits non-zero when the buffer has diagnostics, which is
		// the normal case mid-edit. The output is still usable.
		d.logger.Debug(d.stage.String() + " exited with: " + ev.Err.Error())
	}

	switch d.stage {
	case domain.StagePreProcess:
		d.onPreProcessedLocked(ctx)
		d.mu.Unlock()

	case domain.StageCreatePCH:
		d.onPCHCreatedLocked(ctx)
		d.mu.Unlock()

	case domain.StageCodeComplete:
		out := d.output.String()
		d.cleanupLocked()
		d.editor = nil
		d.activationPos = -1
		d.mu.Unlock()
		// Deliver outside the lock: the consumer may immediately request
		// another completion.
		d.consumer.OnCompletionOutput(out)

	default:
		d.cleanupLocked()
		d.mu.Unlock()
	}
}

// onPreProcessedLocked filters the captured preprocessor output, writes the
// synthesized PCH header, and launches PCH generation.
func (d *Driver) onPreProcessedLocked(ctx context.Context) {
	if d.editor == nil {
		d.cleanupLocked()
		return
	}
	source := d.editor.FileName()

	ppFile := domain.PreprocessOutputPath(d.cache.Dir(), source)
	content, err := os.ReadFile(ppFile)
	if err != nil {
		d.logger.Debug("no preprocessor output captured: " + err.Error())
	}
	_ = os.Remove(ppFile)

	includes := FilterPreprocessorOutput(string(content), filepath.Dir(source), source)
	d.pchHeaders = SelectPCHHeaders(includes, d.removedIncludes)

	header := domain.PCHHeaderPath(d.cache.Dir(), source)
	if err := os.WriteFile(header, []byte(RenderPCHHeader(d.pchHeaders)), domain.FilePerm); err != nil {
		d.logger.Error(zerr.With(zerr.Wrap(err, "failed to write PCH header"), "path", header))
		d.cleanupLocked()
		return
	}

	d.releaseProcessLocked()
	d.launchStageLocked(ctx, domain.StageCreatePCH)
}

// onPCHCreatedLocked stores the fresh cache entry, removes the transient
// PCH header source, and launches the completion request.
func (d *Driver) onPCHCreatedLocked(ctx context.Context) {
	if d.editor == nil {
		d.cleanupLocked()
		return
	}
	source := d.editor.FileName()

	artifact := domain.PCHArtifactPath(d.cache.Dir(), source)
	d.cache.Store(source, artifact, d.removedIncludes, d.pchHeaders)
	d.logger.Debug("cached PCH " + artifact + " for " + source)

	_ = os.Remove(domain.PCHHeaderPath(d.cache.Dir(), source))
	d.pchHeaders = nil

	d.releaseProcessLocked()
	d.launchStageLocked(ctx, domain.StageCodeComplete)
}

// releaseProcessLocked unconditionally releases the process slot and ends
// the stage span. The accumulated output buffer is cleared with it.
func (d *Driver) releaseProcessLocked() {
	if d.proc != nil {
		d.proc.Terminate()
		d.proc = nil
	}
	if d.span != nil {
		d.span.End()
		d.span = nil
	}
	d.output.Reset()
}

// cleanupLocked releases the process slot and returns the driver to idle.
func (d *Driver) cleanupLocked() {
	d.releaseProcessLocked()
	d.stage = domain.StageIdle
}

// writeProbe writes the temporary compilable unit for the completion stage
// and returns the location token to complete at. Source files are probed
// with the buffer verbatim; headers are probed through a one-line #include
// wrapper, keeping the location in the original file.
func writeProbe(probe, source, buffer string, line, column int) (domain.Location, error) {
	loc := domain.Location{Line: line, Column: column}

	var content string
	if domain.IsSourceFile(source) {
		content = buffer
		loc.File = filepath.Base(probe)
	} else {
		content = "#include <" + filepath.Base(source) + ">\n"
		loc.File = source
	}

	if err := os.WriteFile(probe, []byte(content), domain.FilePerm); err != nil {
		return domain.Location{}, zerr.With(
			errors.Join(domain.ErrProbeWriteFailed, err), "path", probe)
	}
	return loc, nil
}

// identifierPrefix returns the in-progress identifier the cursor sits at
// the end of: the longest run of identifier characters at the end of the
// buffer. The scan stops at a member-access token (->, ., ::) or any other
// non-identifier character, so the completion anchor lands just after it.
func identifierPrefix(buffer string) string {
	i := len(buffer)
	for i > 0 {
		c := buffer[i-1]
		if c == '_' ||
			c >= 'a' && c <= 'z' ||
			c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' {
			i--
			continue
		}
		break
	}
	return buffer[i:]
}
