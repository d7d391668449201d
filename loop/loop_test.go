package loop

import (
	"testing"
	"time"
)

func TestLoop_PostOrder(t *testing.T) {
	l := New()

	var order []int
	l.Post(func() { order = append(order, 1) })
	l.Post(func() { order = append(order, 2) })
	l.Post(func() { order = append(order, 3) })

	l.RunOnce()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("Expected FIFO order [1 2 3], got %v", order)
	}
	if l.HasPending() {
		t.Error("Expected nothing pending after RunOnce")
	}
}

func TestLoop_TaskSchedulesTask(t *testing.T) {
	l := New()

	ran := false
	l.Post(func() {
		l.Post(func() { ran = true })
	})

	l.RunUntilIdle()
	if !ran {
		t.Error("Expected task queued during a pump to run")
	}
}

func TestLoop_SetTimeout(t *testing.T) {
	l := New()

	fired := false
	id := l.SetTimeout(func() { fired = true }, 10*time.Millisecond)
	if id == 0 {
		t.Fatal("Expected a non-zero timer id")
	}

	l.RunOnce()
	if fired {
		t.Error("Expected timer not to fire before its delay")
	}

	l.RunUntilIdle()
	if !fired {
		t.Error("Expected timer to fire")
	}
}

func TestLoop_ClearTimeout(t *testing.T) {
	l := New()

	fired := false
	id := l.SetTimeout(func() { fired = true }, 5*time.Millisecond)
	l.ClearTimeout(id)

	l.RunUntilIdle()
	if fired {
		t.Error("Expected cleared timer not to fire")
	}
	if l.HasPending() {
		t.Error("Expected no pending work after clear")
	}
}

func TestLoop_ClearTimeoutFromEarlierCallback(t *testing.T) {
	l := New()

	fired := false
	var second int
	l.SetTimeout(func() { l.ClearTimeout(second) }, 5*time.Millisecond)
	second = l.SetTimeout(func() { fired = true }, 6*time.Millisecond)

	// Let both come due so they execute in the same pump.
	time.Sleep(15 * time.Millisecond)
	l.RunOnce()

	if fired {
		t.Error("Expected timer cleared by an earlier callback in the same pump not to fire")
	}
	if l.HasPending() {
		t.Error("Expected no pending work after the pump")
	}
}

func TestLoop_TimerOrder(t *testing.T) {
	l := New()

	var order []int
	l.SetTimeout(func() { order = append(order, 2) }, 10*time.Millisecond)
	l.SetTimeout(func() { order = append(order, 1) }, 5*time.Millisecond)

	l.RunUntilIdle()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected due order [1 2], got %v", order)
	}
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	l := New()

	fires := 0
	d := NewDebouncer(l, 30*time.Millisecond, func() { fires++ })

	// 10 calls spaced well inside the delay collapse to one fire
	for i := 0; i < 10; i++ {
		d.Call()
		l.RunFor(5 * time.Millisecond)
	}
	l.RunUntilIdle()

	if fires != 1 {
		t.Errorf("Expected a burst to coalesce to 1 fire, got %d", fires)
	}
}

func TestDebouncer_SpacedCallsFireEach(t *testing.T) {
	l := New()

	fires := 0
	d := NewDebouncer(l, 5*time.Millisecond, func() { fires++ })

	d.Call()
	l.RunUntilIdle()
	d.Call()
	l.RunUntilIdle()

	if fires != 2 {
		t.Errorf("Expected 2 fires for calls separated by idle periods, got %d", fires)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	l := New()

	fires := 0
	d := NewDebouncer(l, 5*time.Millisecond, func() { fires++ })

	d.Call()
	d.Stop()
	l.RunUntilIdle()

	if fires != 0 {
		t.Errorf("Expected no fires after Stop, got %d", fires)
	}

	// Stop is idempotent and does not break later use
	d.Stop()
	d.Call()
	l.RunUntilIdle()
	if fires != 1 {
		t.Errorf("Expected 1 fire after restart, got %d", fires)
	}
}
