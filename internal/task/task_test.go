package task

import (
	"testing"
	"time"

	"github.com/studyflowhq/studyflow/internal/date"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 30, 0, 0, time.Local)
	past := date.New(2026, time.March, 9)
	today := date.New(2026, time.March, 10)
	future := date.New(2026, time.March, 11)

	cases := []struct {
		name string
		task Task
		want bool
	}{
		{"no due date", Task{}, false},
		{"due yesterday", Task{Due: &past}, true},
		{"due today", Task{Due: &today}, false},
		{"due tomorrow", Task{Due: &future}, false},
		{"completed past due", Task{Completed: true, Due: &past}, false},
	}
	for _, tc := range cases {
		if got := tc.task.IsOverdue(now); got != tc.want {
			t.Fatalf("%s: IsOverdue() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSetCompletedInvariant(t *testing.T) {
	now := time.Now()
	task := &Task{ID: 1, Text: "read"}

	SetCompleted(task, true, now)
	if !task.Completed || task.CompletedAt == nil {
		t.Fatal("completed task must carry a non-nil CompletedAt")
	}

	SetCompleted(task, false, now)
	if task.Completed || task.CompletedAt != nil {
		t.Fatal("reopened task must carry a nil CompletedAt")
	}

	// Re-completing records the new time, not the original.
	later := now.Add(time.Hour)
	SetCompleted(task, true, later)
	if !task.CompletedAt.Equal(later) {
		t.Fatalf("CompletedAt = %v, want %v", task.CompletedAt, later)
	}
}

func TestValidateText(t *testing.T) {
	if _, err := ValidateText("   "); err == nil {
		t.Fatal("ValidateText(blank): want error")
	}
	got, err := ValidateText("  read chapter 4  ")
	if err != nil {
		t.Fatalf("ValidateText() error = %v", err)
	}
	if got != "read chapter 4" {
		t.Fatalf("ValidateText() = %q, want trimmed text", got)
	}
}

func TestValidatePriority(t *testing.T) {
	allowed := []string{"high", "medium", "low"}
	if err := ValidatePriority("high", allowed); err != nil {
		t.Fatalf("ValidatePriority(high) error = %v", err)
	}
	if err := ValidatePriority("urgent", allowed); err == nil {
		t.Fatal("ValidatePriority(urgent): want error")
	}
	// Case matters: priorities are stored lowercase.
	if err := ValidatePriority("High", allowed); err == nil {
		t.Fatal("ValidatePriority(High): want error")
	}
}
