package query

import (
	"testing"
	"time"

	"github.com/studyflowhq/studyflow/internal/date"
	"github.com/studyflowhq/studyflow/internal/task"
)

var testPriorities = []string{"high", "medium", "low"}

func newTask(id int, text, subject, priority string, completed bool, due *date.Date) *task.Task {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local).Add(time.Duration(id) * time.Minute)
	t := &task.Task{
		ID:        id,
		Text:      text,
		Subject:   subject,
		Priority:  priority,
		Completed: completed,
		CreatedAt: created,
		Due:       due,
	}
	if completed {
		done := created.Add(time.Hour)
		t.CompletedAt = &done
	}
	return t
}

func ids(tasks []*task.Task) []int {
	result := make([]int, len(tasks))
	for i, t := range tasks {
		result[i] = t.ID
	}
	return result
}

func equalIDs(a []int, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseStatusFilter(t *testing.T) {
	for _, valid := range []string{"all", "active", "completed", "overdue"} {
		if _, err := ParseStatusFilter(valid); err != nil {
			t.Fatalf("ParseStatusFilter(%q) error = %v", valid, err)
		}
	}
	if _, err := ParseStatusFilter("done"); err == nil {
		t.Fatal("ParseStatusFilter(done): want error")
	}
}

func TestFilterByStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	past := date.New(2026, time.March, 5)
	future := date.New(2026, time.March, 20)

	tasks := []*task.Task{
		newTask(1, "active undated", "math", "medium", false, nil),
		newTask(2, "completed", "math", "medium", true, nil),
		newTask(3, "active overdue", "science", "medium", false, &past),
		newTask(4, "completed with past due", "science", "medium", true, &past),
		newTask(5, "active future due", "english", "medium", false, &future),
	}

	cases := []struct {
		filter StatusFilter
		want   []int
	}{
		{FilterAll, []int{1, 2, 3, 4, 5}},
		{FilterActive, []int{1, 3, 5}},
		{FilterCompleted, []int{2, 4}},
		{FilterOverdue, []int{3}},
	}
	for _, tc := range cases {
		got := ids(Filter(tasks, Options{Status: tc.filter}, now))
		if !equalIDs(got, tc.want) {
			t.Fatalf("Filter(%s) = %v, want %v", tc.filter, got, tc.want)
		}
	}
}

func TestOverdueNeverIncludesCompletedOrUndated(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	past := date.New(2026, time.March, 1)

	tasks := []*task.Task{
		newTask(1, "completed, past due", "math", "high", true, &past),
		newTask(2, "active, no due", "math", "high", false, nil),
		newTask(3, "due today", "math", "high", false, func() *date.Date { d := date.FromTime(now); return &d }()),
	}

	got := Filter(tasks, Options{Status: FilterOverdue}, now)
	if len(got) != 0 {
		t.Fatalf("Filter(overdue) = %v, want empty: completed, undated, and due-today tasks are never overdue", ids(got))
	}
}

func TestSearchMatchesTextAndSubject(t *testing.T) {
	now := time.Now()
	tasks := []*task.Task{
		newTask(1, "Review algebra notes", "math", "medium", false, nil),
		newTask(2, "essay draft", "english", "medium", false, nil),
		newTask(3, "lab report", "science", "medium", false, nil),
	}

	if got := ids(Filter(tasks, Options{Search: "ALGEBRA"}, now)); !equalIDs(got, []int{1}) {
		t.Fatalf("search is case-insensitive over text: got %v", got)
	}
	if got := ids(Filter(tasks, Options{Search: "engl"}, now)); !equalIDs(got, []int{2}) {
		t.Fatalf("search matches subject substrings: got %v", got)
	}
	if got := ids(Filter(tasks, Options{Search: "  "}, now)); !equalIDs(got, []int{1, 2, 3}) {
		t.Fatalf("blank search passes everything: got %v", got)
	}
	if got := Filter(tasks, Options{Search: "zzz"}, now); got == nil {
		t.Fatal("Filter must return an empty slice, never nil")
	}
}

func TestFilterPreservesManualOrder(t *testing.T) {
	now := time.Now()
	tasks := []*task.Task{
		newTask(3, "c", "math", "low", false, nil),
		newTask(1, "a", "math", "high", false, nil),
		newTask(2, "b", "math", "medium", false, nil),
	}

	got := ids(FilterAndSort(tasks, Options{Status: FilterAll}, testPriorities, now))
	if !equalIDs(got, []int{3, 1, 2}) {
		t.Fatalf("unsorted view must keep manual order: got %v", got)
	}
}

func TestPrioritySortWithCreationTieBreak(t *testing.T) {
	now := time.Now()

	// Two highs created at different times, one low between them.
	older := newTask(1, "older high", "math", "high", false, nil)
	low := newTask(2, "low", "math", "low", false, nil)
	newer := newTask(3, "newer high", "math", "high", false, nil)

	got := ids(FilterAndSort([]*task.Task{older, low, newer}, Options{Sorted: true}, testPriorities, now))
	// Priority first (high before low), newest-created high first.
	if !equalIDs(got, []int{3, 1, 2}) {
		t.Fatalf("sorted = %v, want [3 1 2]", got)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	tasks := []*task.Task{
		newTask(1, "low", "math", "low", false, nil),
		newTask(2, "high", "math", "high", false, nil),
	}

	_ = FilterAndSort(tasks, Options{Sorted: true}, testPriorities, now)

	if tasks[0].ID != 1 || tasks[1].ID != 2 {
		t.Fatalf("input order changed to %v; derived sorts must not write back", ids(tasks))
	}
}

func TestUnknownPrioritySortsLast(t *testing.T) {
	now := time.Now()
	tasks := []*task.Task{
		newTask(1, "legacy", "math", "urgent", false, nil),
		newTask(2, "low", "math", "low", false, nil),
	}

	got := ids(FilterAndSort(tasks, Options{Sorted: true}, testPriorities, now))
	if !equalIDs(got, []int{2, 1}) {
		t.Fatalf("sorted = %v, want unknown priority last: [2 1]", got)
	}
}

func TestCombinedFilterSearchSort(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	tasks := []*task.Task{
		newTask(1, "algebra drill", "math", "low", false, nil),
		newTask(2, "algebra exam prep", "math", "high", false, nil),
		newTask(3, "algebra review", "math", "high", true, nil),
		newTask(4, "essay", "english", "high", false, nil),
	}

	opts := Options{Status: FilterActive, Search: "algebra", Sorted: true}
	got := ids(FilterAndSort(tasks, opts, testPriorities, now))
	if !equalIDs(got, []int{2, 1}) {
		t.Fatalf("combined view = %v, want [2 1]", got)
	}
}
