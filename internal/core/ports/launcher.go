package ports

import (
	"context"

	"go.trai.ch/clank/internal/core/domain"
)

// Event is a notification from a running compiler process. Data events
// carry output chunks; the final event has Terminated set and carries the
// process exit error, if any. Events for a process are delivered in order:
// all data events precede the termination event.
type Event struct {
	Data       []byte
	Terminated bool
	Err        error
}

// Process is a handle on a launched compiler invocation.
type Process interface {
	// Events returns the channel process notifications are delivered on.
	// The channel is closed after the termination event.
	Events() <-chan Event

	// Terminate kills the process and releases its resources. It is safe
	// to call after the process has already exited.
	Terminate()
}

// Launcher is the async-process facility used to run compiler invocations.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Launch starts cmd asynchronously in cmd.Dir. Combined stdout and
	// stderr are delivered as data events, or written to cmd.CaptureFile
	// when it is set.
	Launch(ctx context.Context, cmd domain.Command) (Process, error)
}
