package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of signals into a single callback once the
// window has passed without a new signal.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	window   time.Duration
	callback func()
}

// NewDebouncer creates a debouncer with the given window and callback.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{window: window, callback: callback}
}

// Bump registers a signal, restarting the debounce window.
func (d *Debouncer) Bump() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire runs when the window expires without another signal.
func (d *Debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		d.callback()
	}
}

// Flush cancels any pending window and runs the callback immediately.
// It blocks until the callback completes.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return
	}
	if !d.timer.Stop() {
		// The timer already fired; let it deliver rather than firing twice.
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		d.callback()
	}
}
