package timer

import "testing"

func TestNewStartsIdle(t *testing.T) {
	tm := New(25)
	if tm.State() != Idle {
		t.Fatalf("State() = %v, want Idle", tm.State())
	}
	if tm.Remaining() != 25*60 {
		t.Fatalf("Remaining() = %d, want %d", tm.Remaining(), 25*60)
	}
	if tm.Clock() != "25:00" {
		t.Fatalf("Clock() = %q, want 25:00", tm.Clock())
	}
}

func TestNewClampsToOneMinute(t *testing.T) {
	tm := New(0)
	if tm.Minutes() != 1 || tm.Remaining() != 60 {
		t.Fatalf("New(0) = %d min / %d s, want 1 min / 60 s", tm.Minutes(), tm.Remaining())
	}
}

func TestStartPauseResume(t *testing.T) {
	tm := New(25)

	tm.Start()
	if tm.State() != Running {
		t.Fatalf("after Start: State() = %v, want Running", tm.State())
	}

	if expired := tm.Tick(); expired {
		t.Fatal("first tick must not expire a 25-minute timer")
	}
	if tm.Remaining() != 25*60-1 {
		t.Fatalf("Remaining() = %d, want %d", tm.Remaining(), 25*60-1)
	}

	tm.Pause()
	if tm.State() != Paused {
		t.Fatalf("after Pause: State() = %v, want Paused", tm.State())
	}

	// Ticks while paused are ignored; remaining time is preserved.
	remaining := tm.Remaining()
	for i := 0; i < 10; i++ {
		if tm.Tick() {
			t.Fatal("tick while paused must not expire")
		}
	}
	if tm.Remaining() != remaining {
		t.Fatalf("Remaining() = %d after paused ticks, want %d", tm.Remaining(), remaining)
	}

	tm.Start()
	if tm.State() != Running {
		t.Fatalf("after resume: State() = %v, want Running", tm.State())
	}
	if tm.Tick() {
		t.Fatal("resume tick must not expire")
	}
	if tm.Remaining() != remaining-1 {
		t.Fatalf("Remaining() = %d after resume tick, want %d", tm.Remaining(), remaining-1)
	}
}

func TestTickIgnoredWhileIdle(t *testing.T) {
	tm := New(25)
	if tm.Tick() {
		t.Fatal("tick while idle must not expire")
	}
	if tm.Remaining() != 25*60 {
		t.Fatalf("Remaining() = %d after idle tick, want %d", tm.Remaining(), 25*60)
	}
}

func TestFullCountdownExpiresExactlyOnce(t *testing.T) {
	tm := New(25)
	tm.Start()

	expiries := 0
	for i := 0; i < 25*60; i++ {
		if tm.Tick() {
			expiries++
		}
	}

	if expiries != 1 {
		t.Fatalf("expiries = %d over a full countdown, want exactly 1", expiries)
	}
	if tm.State() != Idle {
		t.Fatalf("State() = %v after expiry, want Idle", tm.State())
	}
	if tm.Remaining() != 25*60 {
		t.Fatalf("Remaining() = %d after expiry, want reloaded %d", tm.Remaining(), 25*60)
	}

	// The reloaded timer stays put until started again.
	if tm.Tick() {
		t.Fatal("tick after expiry must be ignored while idle")
	}
}

func TestResetReloadsConfiguredDuration(t *testing.T) {
	tm := New(25)
	tm.Start()
	tm.Tick()
	tm.Tick()

	tm.Reset(50)
	if tm.State() != Idle {
		t.Fatalf("State() = %v after Reset, want Idle", tm.State())
	}
	if tm.Minutes() != 50 || tm.Remaining() != 50*60 {
		t.Fatalf("after Reset(50): %d min / %d s, want 50 / %d", tm.Minutes(), tm.Remaining(), 50*60)
	}
}

func TestSetDurationOnlyAppliesWhileIdle(t *testing.T) {
	tm := New(25)

	tm.SetDuration(50)
	if tm.Remaining() != 50*60 {
		t.Fatalf("idle SetDuration: Remaining() = %d, want %d", tm.Remaining(), 50*60)
	}

	tm.Start()
	tm.Tick()
	before := tm.Remaining()

	// Mid-countdown changes wait for the next reset.
	tm.SetDuration(5)
	if tm.Remaining() != before {
		t.Fatalf("running SetDuration changed Remaining() to %d, want %d", tm.Remaining(), before)
	}
	if tm.Minutes() != 50 {
		t.Fatalf("running SetDuration changed Minutes() to %d, want 50", tm.Minutes())
	}

	tm.Reset(5)
	if tm.Remaining() != 5*60 {
		t.Fatalf("after Reset(5): Remaining() = %d, want %d", tm.Remaining(), 5*60)
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		Idle:    "idle",
		Running: "running",
		Paused:  "paused",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestClockFormatting(t *testing.T) {
	tm := New(2)
	tm.Start()
	for i := 0; i < 61; i++ {
		tm.Tick()
	}
	if got := tm.Clock(); got != "00:59" {
		t.Fatalf("Clock() = %q, want 00:59", got)
	}
}
