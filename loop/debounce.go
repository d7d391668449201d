package loop

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into a single callback invocation:
// the callback fires only after the configured delay has elapsed with no
// further Call. It is a generic time-coalescing wrapper independent of
// what it debounces.
type Debouncer struct {
	loop  *Loop
	delay time.Duration
	fn    func()

	mu      sync.Mutex
	pending int // outstanding timer id, 0 if none
}

// NewDebouncer creates a debouncer that runs fn on the given loop after
// delay of silence.
func NewDebouncer(l *Loop, delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		loop:  l,
		delay: delay,
		fn:    fn,
	}
}

// Call requests an invocation, restarting the silence window. Only the
// last Call in a burst spaced closer than the delay produces a callback.
func (d *Debouncer) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != 0 {
		d.loop.ClearTimeout(d.pending)
	}
	d.pending = d.loop.SetTimeout(func() {
		d.mu.Lock()
		d.pending = 0
		d.mu.Unlock()
		d.fn()
	}, d.delay)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != 0 {
		d.loop.ClearTimeout(d.pending)
		d.pending = 0
	}
}
