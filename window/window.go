// Package window models the display surface: it provides the current
// viewport size and fires resize events through the event loop.
package window

import (
	"sync"

	"containfit/dom"
	"containfit/loop"
)

// EventResize is the event type dispatched when the viewport changes.
const EventResize = "resize"

// Window holds the viewport dimensions and the resize event target.
type Window struct {
	loop *loop.Loop

	mu     sync.Mutex
	width  int
	height int

	events *dom.EventTarget
}

// New creates a window with the given initial viewport size.
func New(l *loop.Loop, width, height int) *Window {
	return &Window{
		loop:   l,
		width:  width,
		height: height,
		events: dom.NewEventTarget(),
	}
}

// Loop returns the event loop the window dispatches on.
func (w *Window) Loop() *loop.Loop {
	return w.loop
}

// InnerWidth returns the current viewport width.
func (w *Window) InnerWidth() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

// InnerHeight returns the current viewport height.
func (w *Window) InnerHeight() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

// Resize updates the viewport size and queues a resize event on the
// loop. Listeners observe the dimensions current at dispatch time, so a
// burst of resizes reads only the latest size.
func (w *Window) Resize(width, height int) {
	w.mu.Lock()
	w.width = width
	w.height = height
	w.mu.Unlock()

	w.loop.Post(func() {
		w.events.Dispatch(&dom.Event{Type: EventResize})
	})
}

// AddResizeListener registers fn to run on every resize event and
// returns a function that removes the listener.
func (w *Window) AddResizeListener(fn func()) (remove func()) {
	handle := w.events.AddListener(EventResize, func(*dom.Event) { fn() })
	return func() {
		w.events.RemoveListener(EventResize, handle)
	}
}
