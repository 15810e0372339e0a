package stats

import (
	"testing"
	"time"

	"github.com/studyflowhq/studyflow/internal/session"
	"github.com/studyflowhq/studyflow/internal/task"
)

func completedTask(id int, subject string, at time.Time) *task.Task {
	return &task.Task{ID: id, Text: "t", Subject: subject, Priority: "medium", Completed: true, CompletedAt: &at, CreatedAt: at}
}

func openTask(id int, subject string) *task.Task {
	return &task.Task{ID: id, Text: "t", Subject: subject, Priority: "medium", CreatedAt: time.Now()}
}

func sessionAt(id int, minutes int, at time.Time) *session.Session {
	return &session.Session{ID: id, Minutes: minutes, CompletedAt: at}
}

func TestProgressPercent(t *testing.T) {
	now := time.Now()

	if got := ProgressPercent(nil); got != 0 {
		t.Fatalf("ProgressPercent(empty) = %d, want 0", got)
	}

	tasks := []*task.Task{
		completedTask(1, "math", now),
		openTask(2, "math"),
		openTask(3, "math"),
	}
	if got := ProgressPercent(tasks); got != 33 {
		t.Fatalf("ProgressPercent(1/3) = %d, want 33", got)
	}

	tasks = append(tasks, completedTask(4, "math", now), completedTask(5, "math", now))
	if got := ProgressPercent(tasks); got != 60 {
		t.Fatalf("ProgressPercent(3/5) = %d, want 60", got)
	}
}

func TestProgressPercentRounds(t *testing.T) {
	now := time.Now()
	// 2 of 3 completed: 66.67 rounds to 67, not truncates to 66.
	tasks := []*task.Task{
		completedTask(1, "math", now),
		completedTask(2, "math", now),
		openTask(3, "math"),
	}
	if got := ProgressPercent(tasks); got != 67 {
		t.Fatalf("ProgressPercent(2/3) = %d, want 67", got)
	}
}

func TestMotivationTiers(t *testing.T) {
	cases := []struct {
		percent   int
		hasAny    bool
		want      string
		celebrate bool
	}{
		{0, false, "Start adding tasks!", false},
		{0, true, "Just beginning? Every step counts!", false},
		{24, true, "Just beginning? Every step counts!", false},
		{25, true, "Getting started! Push forward!", false},
		{49, true, "Getting started! Push forward!", false},
		{50, true, "Halfway! You've got this!", false},
		{74, true, "Halfway! You've got this!", false},
		{75, true, "Almost there! Keep going!", false},
		{99, true, "Almost there! Keep going!", false},
		{100, true, "All done! Amazing!", true},
	}
	for _, tc := range cases {
		got := MotivationTier(tc.percent, tc.hasAny)
		if got.Message != tc.want {
			t.Fatalf("MotivationTier(%d, %v) = %q, want %q", tc.percent, tc.hasAny, got.Message, tc.want)
		}
		if got.Celebrate != tc.celebrate {
			t.Fatalf("MotivationTier(%d, %v).Celebrate = %v, want %v", tc.percent, tc.hasAny, got.Celebrate, tc.celebrate)
		}
	}
}

func TestStreakCountsConsecutiveDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)

	tasks := []*task.Task{
		completedTask(1, "math", now),                    // today
		completedTask(2, "math", now.AddDate(0, 0, -1)),  // yesterday
		completedTask(3, "math", now.AddDate(0, 0, -2)),  // two days ago
		completedTask(4, "math", now.AddDate(0, 0, -10)), // beyond a gap
	}
	if got := Streak(tasks, nil, now); got != 3 {
		t.Fatalf("Streak() = %d, want 3", got)
	}
}

func TestStreakQuietTodayDoesNotBreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	// Nothing today, activity yesterday and the day before: the streak
	// earned through yesterday still stands.
	tasks := []*task.Task{
		completedTask(1, "math", now.AddDate(0, 0, -1)),
		completedTask(2, "math", now.AddDate(0, 0, -2)),
	}
	if got := Streak(tasks, nil, now); got != 2 {
		t.Fatalf("Streak() = %d, want 2 (quiet today keeps yesterday's streak)", got)
	}
}

func TestStreakGapBreaks(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	// Activity today and three days ago: the gap resets to 1.
	tasks := []*task.Task{
		completedTask(1, "math", now),
		completedTask(2, "math", now.AddDate(0, 0, -3)),
	}
	if got := Streak(tasks, nil, now); got != 1 {
		t.Fatalf("Streak() = %d, want 1", got)
	}

	// Today, yesterday, and three days ago with a gap two days ago:
	// the streak is the consecutive run of 2, not the total of 3.
	tasks = append(tasks, completedTask(3, "math", now.AddDate(0, 0, -1)))
	if got := Streak(tasks, nil, now); got != 2 {
		t.Fatalf("Streak() = %d across a gap, want 2", got)
	}
}

func TestStreakCountsSessions(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	// No tasks at all; session activity alone sustains the streak.
	sessions := []*session.Session{
		sessionAt(1, 25, now),
		sessionAt(2, 25, now.AddDate(0, 0, -1)),
	}
	if got := Streak(nil, sessions, now); got != 2 {
		t.Fatalf("Streak() = %d, want 2 from session activity", got)
	}
}

func TestStreakEmpty(t *testing.T) {
	if got := Streak(nil, nil, time.Now()); got != 0 {
		t.Fatalf("Streak(no activity) = %d, want 0", got)
	}
}

func TestStreakCappedAtWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	// Sixty consecutive active days: the walk stops at the 30-day
	// window, so the streak never exceeds it.
	var tasks []*task.Task
	for i := 0; i < 60; i++ {
		tasks = append(tasks, completedTask(i+1, "math", now.AddDate(0, 0, -i)))
	}
	if got := Streak(tasks, nil, now); got != 30 {
		t.Fatalf("Streak() = %d over 60 active days, want capped 30", got)
	}
}

func TestSubjectBreakdown(t *testing.T) {
	now := time.Now()
	subjects := []string{"math", "science", "english"}

	tasks := []*task.Task{
		completedTask(1, "math", now),
		openTask(2, "math"),
		openTask(3, "science"),
		completedTask(4, "art", now), // unlisted subject
	}

	rows := SubjectBreakdown(tasks, subjects)
	if len(rows) != 4 {
		t.Fatalf("len(rows) = %d, want 3 subjects + other", len(rows))
	}

	math := rows[0]
	if math.Subject != "math" || math.Total != 2 || math.Completed != 1 || math.Percent != 50 {
		t.Fatalf("math row = %+v, want 1/2 (50%%)", math)
	}
	if rows[2].Subject != "english" || rows[2].Total != 0 {
		t.Fatalf("english row = %+v, want empty row kept in order", rows[2])
	}

	other := rows[3]
	if other.Subject != "other" || other.Total != 1 || other.Completed != 1 {
		t.Fatalf("other row = %+v, want the unlisted task folded in", other)
	}
}

func TestSubjectBreakdownNoOtherRow(t *testing.T) {
	rows := SubjectBreakdown([]*task.Task{openTask(1, "math")}, []string{"math"})
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1: no other row without unlisted subjects", len(rows))
	}
}

func TestWeeklySeries(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)

	tasks := []*task.Task{
		completedTask(1, "math", now),
		completedTask(2, "math", now.AddDate(0, 0, -2)),
		completedTask(3, "math", now.AddDate(0, 0, -10)), // outside the window
	}
	sessions := []*session.Session{
		sessionAt(1, 25, now),
		sessionAt(2, 50, now),
		sessionAt(3, 25, now.AddDate(0, 0, -6)),
		sessionAt(4, 25, now.AddDate(0, 0, -7)), // outside the window
	}

	series := WeeklySeries(tasks, sessions, now)
	if len(series) != 7 {
		t.Fatalf("len(series) = %d, want 7", len(series))
	}

	first, last := series[0], series[6]
	if first.Date.String() != "2026-03-04" || last.Date.String() != "2026-03-10" {
		t.Fatalf("series spans %s..%s, want 2026-03-04..2026-03-10", first.Date, last.Date)
	}
	if first.FocusMinutes != 25 {
		t.Fatalf("oldest day focus = %d, want 25", first.FocusMinutes)
	}
	if last.FocusMinutes != 75 || last.TasksCompleted != 1 {
		t.Fatalf("today = %+v, want 75 min and 1 task", last)
	}
	if series[4].TasksCompleted != 1 {
		t.Fatalf("two days ago = %+v, want 1 task completed", series[4])
	}
}
