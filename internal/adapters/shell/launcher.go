// Package shell launches compiler invocations and shell expansions via
// os/exec.
package shell

import (
	"context"
	"os"
	"os/exec"

	"go.trai.ch/clank/internal/core/domain"
	"go.trai.ch/clank/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	eventChannelBuffer = 64
	readChunkSize      = 4096
)

var _ ports.Launcher = (*Launcher)(nil)

// process is a handle on a launched compiler invocation. Its goroutine
// pumps output chunks onto the event channel, then the termination event,
// then closes the channel.
type process struct {
	cmd    *exec.Cmd
	events chan ports.Event
}

// Events returns the process notification channel.
func (p *process) Events() <-chan ports.Event {
	return p.events
}

// Terminate kills the process. Safe to call after exit; the kill simply
// fails and is ignored.
func (p *process) Terminate() {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}

// Launcher implements ports.Launcher on os/exec. Stdout and stderr are
// combined, matching what the completion front-end prints diagnostics and
// candidates to.
type Launcher struct{}

// NewLauncher creates a new Launcher.
func NewLauncher() *Launcher {
	return &Launcher{}
}

// Launch starts cmd asynchronously in its working directory. When
// cmd.CaptureFile is set the combined output streams to that file and only
// the termination event is emitted; otherwise output arrives as data
// events.
func (l *Launcher) Launch(ctx context.Context, cmd domain.Command) (ports.Process, error) {
	c := exec.CommandContext(ctx, cmd.Binary, cmd.Args...) //nolint:gosec // compiler invocation built by the driver
	c.Dir = cmd.Dir

	p := &process{
		cmd:    c,
		events: make(chan ports.Event, eventChannelBuffer),
	}

	if cmd.CaptureFile != "" {
		return p, l.startCaptured(c, p, cmd.CaptureFile)
	}
	return p, l.startStreaming(c, p)
}

// startCaptured redirects combined output into path and waits in the
// background.
func (l *Launcher) startCaptured(c *exec.Cmd, p *process, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open capture file"), "path", path)
	}
	c.Stdout = f
	c.Stderr = f

	if err := c.Start(); err != nil {
		_ = f.Close()
		return zerr.Wrap(err, "failed to start process")
	}

	go func() {
		defer close(p.events)
		err := c.Wait()
		_ = f.Close()
		p.events <- ports.Event{Terminated: true, Err: err}
	}()
	return nil
}

// startStreaming pumps combined output through a pipe onto the event
// channel. Data events are always delivered before the termination event.
func (l *Launcher) startStreaming(c *exec.Cmd, p *process) error {
	pr, pw, err := os.Pipe()
	if err != nil {
		return zerr.Wrap(err, "failed to create output pipe")
	}
	c.Stdout = pw
	c.Stderr = pw

	if err := c.Start(); err != nil {
		_ = pr.Close()
		_ = pw.Close()
		return zerr.Wrap(err, "failed to start process")
	}

	// The child holds its own duplicate of the write end.
	_ = pw.Close()

	go func() {
		defer close(p.events)

		buf := make([]byte, readChunkSize)
		for {
			n, rerr := pr.Read(buf)
			if n > 0 {
				data := make([]byte, n)
				copy(data, buf[:n])
				p.events <- ports.Event{Data: data}
			}
			if rerr != nil {
				break
			}
		}
		_ = pr.Close()

		err := c.Wait()
		p.events <- ports.Event{Terminated: true, Err: err}
	}()
	return nil
}
