package window

import (
	"testing"

	"containfit/loop"
)

func TestWindow_Dimensions(t *testing.T) {
	l := loop.New()
	w := New(l, 1024, 768)

	if w.InnerWidth() != 1024 || w.InnerHeight() != 768 {
		t.Errorf("Expected 1024x768, got %dx%d", w.InnerWidth(), w.InnerHeight())
	}

	// Dimensions update immediately, before the event dispatches
	w.Resize(800, 600)
	if w.InnerWidth() != 800 || w.InnerHeight() != 600 {
		t.Errorf("Expected 800x600 after resize, got %dx%d", w.InnerWidth(), w.InnerHeight())
	}
}

func TestWindow_ResizeDispatchesOnLoop(t *testing.T) {
	l := loop.New()
	w := New(l, 1024, 768)

	calls := 0
	w.AddResizeListener(func() { calls++ })

	w.Resize(640, 480)
	if calls != 0 {
		t.Error("Expected resize event to be deferred to the loop")
	}

	l.RunOnce()
	if calls != 1 {
		t.Errorf("Expected 1 resize call after pumping, got %d", calls)
	}
}

func TestWindow_ListenerSeesLatestSize(t *testing.T) {
	l := loop.New()
	w := New(l, 1024, 768)

	var seenW, seenH int
	w.AddResizeListener(func() {
		seenW, seenH = w.InnerWidth(), w.InnerHeight()
	})

	// Two resizes before the pump: both events fire, both read the
	// final dimensions.
	w.Resize(800, 600)
	w.Resize(500, 1000)
	l.RunOnce()

	if seenW != 500 || seenH != 1000 {
		t.Errorf("Expected listener to read 500x1000, got %dx%d", seenW, seenH)
	}
}

func TestWindow_RemoveResizeListener(t *testing.T) {
	l := loop.New()
	w := New(l, 1024, 768)

	calls := 0
	remove := w.AddResizeListener(func() { calls++ })
	remove()

	w.Resize(640, 480)
	l.RunOnce()

	if calls != 0 {
		t.Errorf("Expected no calls after removal, got %d", calls)
	}
}
