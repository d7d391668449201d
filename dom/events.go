package dom

import "sync"

// Event represents a dispatched DOM event.
type Event struct {
	Type   string
	Target *Node
}

// ListenerFunc is a callback invoked when an event is dispatched.
type ListenerFunc func(*Event)

// eventListener is a registered event listener.
type eventListener struct {
	id int
	fn ListenerFunc
}

// EventTarget manages event listeners for a target. Listeners are
// identified by the integer handle returned from AddListener, so the
// same function value can be registered and removed independently.
type EventTarget struct {
	mu        sync.Mutex
	listeners map[string][]eventListener
	nextID    int
}

// NewEventTarget creates a new EventTarget.
func NewEventTarget() *EventTarget {
	return &EventTarget{
		listeners: make(map[string][]eventListener),
	}
}

// AddListener registers a listener for the given event type and returns
// a non-zero handle for removal.
func (et *EventTarget) AddListener(eventType string, fn ListenerFunc) int {
	et.mu.Lock()
	defer et.mu.Unlock()

	et.nextID++
	et.listeners[eventType] = append(et.listeners[eventType], eventListener{
		id: et.nextID,
		fn: fn,
	})
	return et.nextID
}

// RemoveListener unregisters the listener with the given handle.
// Removing an unknown handle is a no-op.
func (et *EventTarget) RemoveListener(eventType string, handle int) {
	et.mu.Lock()
	defer et.mu.Unlock()

	listeners := et.listeners[eventType]
	for i, l := range listeners {
		if l.id == handle {
			et.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch invokes all listeners registered for the event's type.
// Listeners are copied before invocation, so a listener may remove
// itself or others without affecting the current dispatch.
func (et *EventTarget) Dispatch(event *Event) {
	et.mu.Lock()
	listeners := make([]eventListener, len(et.listeners[event.Type]))
	copy(listeners, et.listeners[event.Type])
	et.mu.Unlock()

	for _, l := range listeners {
		l.fn(event)
	}
}

// HasListeners reports whether any listeners are registered for the
// given event type.
func (et *EventTarget) HasListeners(eventType string) bool {
	et.mu.Lock()
	defer et.mu.Unlock()
	return len(et.listeners[eventType]) > 0
}
