package dom

import "testing"

func TestEventTarget_AddDispatch(t *testing.T) {
	et := NewEventTarget()

	calls := 0
	handle := et.AddListener("load", func(ev *Event) {
		calls++
		if ev.Type != "load" {
			t.Errorf("Expected event type 'load', got '%s'", ev.Type)
		}
	})
	if handle == 0 {
		t.Fatal("Expected a non-zero listener handle")
	}

	et.Dispatch(&Event{Type: "load"})
	et.Dispatch(&Event{Type: "other"})
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestEventTarget_RemoveByHandle(t *testing.T) {
	et := NewEventTarget()

	calls := 0
	fn := func(*Event) { calls++ }
	h1 := et.AddListener("load", fn)
	h2 := et.AddListener("load", fn)

	// The same function registered twice has independent handles
	et.RemoveListener("load", h1)
	et.Dispatch(&Event{Type: "load"})
	if calls != 1 {
		t.Errorf("Expected 1 call after removing one of two listeners, got %d", calls)
	}

	et.RemoveListener("load", h2)
	et.Dispatch(&Event{Type: "load"})
	if calls != 1 {
		t.Errorf("Expected no further calls, got %d", calls)
	}

	// Unknown handles are ignored
	et.RemoveListener("load", 999)
}

func TestEventTarget_ListenerRemovesItselfDuringDispatch(t *testing.T) {
	et := NewEventTarget()

	calls := 0
	var handle int
	handle = et.AddListener("resize", func(*Event) {
		calls++
		et.RemoveListener("resize", handle)
	})

	et.Dispatch(&Event{Type: "resize"})
	et.Dispatch(&Event{Type: "resize"})
	if calls != 1 {
		t.Errorf("Expected self-removing listener to fire once, got %d", calls)
	}
	if et.HasListeners("resize") {
		t.Error("Expected no listeners left")
	}
}

func TestNode_EventListeners(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("img")

	var gotTarget *Node
	handle := el.AddEventListener("load", func(ev *Event) {
		gotTarget = ev.Target
	})

	el.DispatchEvent("load")
	if gotTarget != el.AsNode() {
		t.Error("Expected event target to be the dispatching node")
	}
	if !el.AsNode().HasEventListeners("load") {
		t.Error("Expected listener to be registered")
	}

	el.RemoveEventListener("load", handle)
	if el.AsNode().HasEventListeners("load") {
		t.Error("Expected listener to be removed")
	}
}
