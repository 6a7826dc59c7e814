// Package app implements the application layer for clank.
package app

import (
	"context"
	"os"
	"time"

	"go.trai.ch/clank/internal/adapters/config"
	"go.trai.ch/clank/internal/adapters/editor"
	"go.trai.ch/clank/internal/adapters/watcher"
	"go.trai.ch/clank/internal/core/domain"
	"go.trai.ch/clank/internal/core/ports"
	"go.trai.ch/clank/internal/engine/driver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// idlePollInterval is how often the waiter checks whether the driver
	// dropped the run without producing output.
	idlePollInterval = 25 * time.Millisecond

	// deliveryGrace bounds the window between the driver going idle and the
	// consumer callback landing.
	deliveryGrace = 250 * time.Millisecond
)

// App represents the main application logic.
type App struct {
	workspace *config.Workspace
	launcher  ports.Launcher
	runner    ports.Runner
	locator   ports.IncludeLocator
	watcher   *watcher.Watcher
	logger    ports.Logger
	tracer    ports.Tracer
}

// New creates a new App instance.
func New(
	workspace *config.Workspace,
	launcher ports.Launcher,
	runner ports.Runner,
	locator ports.IncludeLocator,
	fileWatcher *watcher.Watcher,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		workspace: workspace,
		launcher:  launcher,
		runner:    runner,
		locator:   locator,
		watcher:   fileWatcher,
		logger:    log,
		tracer:    tracer,
	}
}

// CompleteOptions configuration for the Complete method.
type CompleteOptions struct {
	Project  string
	CacheDir string
	Watch    bool
}

// outputChannel delivers the compiler's completion output to the waiting
// caller. The channel is buffered so the driver never blocks on delivery.
type outputChannel struct {
	ch chan string
}

func newOutputChannel() *outputChannel {
	return &outputChannel{ch: make(chan string, 1)}
}

// OnCompletionOutput implements ports.Consumer.
func (o *outputChannel) OnCompletionOutput(output string) {
	select {
	case o.ch <- output:
	default:
	}
}

// Complete runs the completion pipeline for file at the 1-based line and
// column and returns the raw compiler output.
func (a *App) Complete(ctx context.Context, file string, line, column int, opts CompleteOptions) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if err := a.workspace.Open(cwd); err != nil {
		return "", zerr.Wrap(err, "failed to open workspace")
	}

	project := opts.Project
	if project == "" {
		project = a.workspace.DefaultProject()
	}

	ed, err := editor.Open(file, project, line, column)
	if err != nil {
		return "", err
	}

	output := newOutputChannel()
	var driverOpts []driver.Option
	if opts.CacheDir != "" {
		driverOpts = append(driverOpts, driver.WithCacheDir(opts.CacheDir))
	}
	drv := driver.New(a.workspace, a.launcher, a.runner, a.locator, output, a.logger, a.tracer, driverOpts...)

	g, ctx := errgroup.WithContext(ctx)

	if opts.Watch {
		if err := a.watcher.Watch(ctx, file, func() {
			a.logger.Info("buffer changed on disk, aborting completion")
			drv.Abort()
		}); err != nil {
			return "", zerr.Wrap(err, "failed to watch "+file)
		}
	}

	drv.RequestCompletion(ctx, ed)

	var result string
	g.Go(func() error {
		res, err := waitForOutput(ctx, drv, output.ch)
		result = res
		return err
	})

	if err := g.Wait(); err != nil {
		return "", err
	}
	return result, nil
}

// CacheClear removes all cached PCH artifacts. An empty cacheDir selects
// the default cache location.
func (a *App) CacheClear(_ context.Context, cacheDir string) error {
	cache := driver.NewPCHCache(cacheDir)
	a.logger.Info("removing PCH cache at " + cache.Dir())
	if err := cache.Purge(); err != nil {
		return err
	}
	a.logger.Info("removed PCH cache")
	return nil
}

// waitForOutput blocks until the run delivers output, goes idle without
// producing any, or ctx is done. A run that ends without output was dropped
// or aborted; the pipeline logs the cause at debug level.
func waitForOutput(ctx context.Context, drv *driver.Driver, output <-chan string) (string, error) {
	ticker := time.NewTicker(idlePollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case out := <-output:
			return out, nil
		case <-ticker.C:
			if drv.Busy() {
				continue
			}
			// The driver releases its process slot before notifying the
			// consumer, so give an in-flight delivery a moment to land.
			select {
			case out := <-output:
				return out, nil
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(deliveryGrace):
				return "", domain.ErrAborted
			}
		}
	}
}
