package task

import "time"

// SetCompleted transitions the task's completion state.
//   - Completing sets CompletedAt (never leaves it nil while completed).
//   - Reopening clears CompletedAt.
//
// The invariant callers rely on: CompletedAt is non-nil iff Completed.
func SetCompleted(t *Task, completed bool, now time.Time) {
	t.Completed = completed
	if completed {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
}

// Toggle flips the task's completion state, maintaining CompletedAt.
func Toggle(t *Task, now time.Time) {
	SetCompleted(t, !t.Completed, now)
}
