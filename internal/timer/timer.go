// Package timer implements the focus countdown state machine. The
// machine is pure: it owns no goroutines and no clock. Whoever hosts
// it (the TUI via a 1-second tick command, tests via a loop) feeds it
// Tick calls and reacts to the expiry signal.
package timer

import "fmt"

// State is the countdown state.
type State int

// Timer states.
const (
	Idle State = iota
	Running
	Paused
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Timer is a single-instance countdown. Remaining time is tracked in
// whole seconds; the configured duration is minutes, matching what a
// completed session records.
type Timer struct {
	state     State
	minutes   int
	remaining int // seconds
}

// New creates an idle timer loaded with the given duration.
func New(minutes int) *Timer {
	t := &Timer{}
	t.load(minutes)
	return t
}

func (t *Timer) load(minutes int) {
	if minutes < 1 {
		minutes = 1
	}
	t.minutes = minutes
	t.remaining = minutes * 60
	t.state = Idle
}

// State returns the current state.
func (t *Timer) State() State {
	return t.state
}

// Minutes returns the duration the countdown was loaded from.
func (t *Timer) Minutes() int {
	return t.minutes
}

// Remaining returns the remaining seconds.
func (t *Timer) Remaining() int {
	return t.remaining
}

// Clock formats the remaining time as MM:SS.
func (t *Timer) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.remaining/60, t.remaining%60)
}

// Start begins or resumes the countdown. A no-op while already running.
func (t *Timer) Start() {
	if t.state == Idle || t.state == Paused {
		t.state = Running
	}
}

// Pause suspends a running countdown, preserving the remaining time.
func (t *Timer) Pause() {
	if t.state == Running {
		t.state = Paused
	}
}

// Reset returns the timer to Idle, reloading the remaining time from
// the given configured duration.
func (t *Timer) Reset(minutes int) {
	t.load(minutes)
}

// SetDuration applies a changed configured duration. While Idle the
// loaded remaining time follows the new value; mid-countdown the
// change waits for the next reset.
func (t *Timer) SetDuration(minutes int) {
	if t.state == Idle {
		t.load(minutes)
	}
}

// Tick advances a running countdown by one second. It reports expired
// exactly once, on the tick that drains the last second; the timer is
// back at Idle (reloaded with its duration) when that happens. Ticks
// in any other state are ignored.
func (t *Timer) Tick() (expired bool) {
	if t.state != Running {
		return false
	}

	t.remaining--
	if t.remaining > 0 {
		return false
	}

	t.load(t.minutes)
	return true
}
