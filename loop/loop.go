// Package loop provides a single-threaded event loop with a task queue
// and one-shot timers. All DOM mutation and behavior evaluation runs as
// loop tasks, so no locking is needed around tree state.
package loop

import (
	"sort"
	"sync"
	"time"
)

// timer is a scheduled one-shot callback.
type timer struct {
	id      int
	fn      func()
	dueTime time.Time
	cleared bool
}

// Loop is an event loop. Tasks and timer callbacks are queued from any
// goroutine but only ever executed by the goroutine pumping the loop.
type Loop struct {
	mu     sync.Mutex
	tasks  []func()
	timers map[int]*timer
	nextID int
}

// New creates a new event loop.
func New() *Loop {
	return &Loop{
		timers: make(map[int]*timer),
	}
}

// Post queues a task for execution on the next pump.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = append(l.tasks, fn)
}

// SetTimeout schedules fn to run once after delay and returns a
// non-zero id usable with ClearTimeout.
func (l *Loop) SetTimeout(fn func(), delay time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	l.timers[l.nextID] = &timer{
		id:      l.nextID,
		fn:      fn,
		dueTime: time.Now().Add(delay),
	}
	return l.nextID
}

// ClearTimeout cancels a scheduled timer. Unknown ids are ignored.
func (l *Loop) ClearTimeout(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.timers[id]; ok {
		t.cleared = true
		delete(l.timers, id)
	}
}

// RunOnce drains the task queue, fires any due timers, and reports
// whether tasks or timers remain pending.
func (l *Loop) RunOnce() bool {
	for {
		l.mu.Lock()
		if len(l.tasks) == 0 {
			l.mu.Unlock()
			break
		}
		t := l.tasks[0]
		l.tasks = l.tasks[1:]
		l.mu.Unlock()

		t()
	}

	l.fireDueTimers()

	return l.HasPending()
}

// fireDueTimers executes every timer whose due time has passed, in due
// order. Callbacks run outside the lock and may schedule more work.
// Timers stay in the map until after they execute, and the cleared flag
// is re-checked right before each callback, so a ClearTimeout issued
// from an earlier callback in the same batch still takes effect.
func (l *Loop) fireDueTimers() {
	l.mu.Lock()
	now := time.Now()
	var due []*timer
	for _, t := range l.timers {
		if !t.cleared && !t.dueTime.After(now) {
			due = append(due, t)
		}
	}
	l.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].dueTime.Before(due[j].dueTime) })
	for _, t := range due {
		l.mu.Lock()
		cleared := t.cleared
		l.mu.Unlock()
		if cleared {
			continue
		}

		t.fn()

		l.mu.Lock()
		delete(l.timers, t.id)
		l.mu.Unlock()
	}
}

// HasPending reports whether any tasks or timers are outstanding.
func (l *Loop) HasPending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks) > 0 || len(l.timers) > 0
}

// nextDue returns the wait until the earliest pending timer, or zero if
// none are pending or one is already due.
func (l *Loop) nextDue() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.timers) == 0 {
		return 0
	}
	now := time.Now()
	var min time.Duration = -1
	for _, t := range l.timers {
		d := t.dueTime.Sub(now)
		if d <= 0 {
			return 0
		}
		if min < 0 || d < min {
			min = d
		}
	}
	if min < 0 {
		return 0
	}
	return min
}

// RunUntilIdle pumps the loop until no tasks or timers remain, sleeping
// through the gap before the earliest pending timer.
func (l *Loop) RunUntilIdle() {
	for l.RunOnce() {
		if d := l.nextDue(); d > 0 {
			time.Sleep(d)
		}
	}
}

// RunFor pumps the loop until the given wall-clock duration has passed,
// regardless of whether work remains.
func (l *Loop) RunFor(d time.Duration) {
	deadline := time.Now().Add(d)
	for {
		l.RunOnce()
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		sleep := remaining
		if next := l.nextDue(); next > 0 && next < sleep {
			sleep = next
		}
		if sleep > time.Millisecond {
			sleep = time.Millisecond
		}
		time.Sleep(sleep)
	}
}
