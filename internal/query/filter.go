// Package query computes filtered and sorted task views. Everything
// here is pure over a snapshot: the stores own the data, this package
// only derives presentations of it.
package query

import (
	"strings"
	"time"

	"github.com/studyflowhq/studyflow/internal/clierr"
	"github.com/studyflowhq/studyflow/internal/task"
)

// StatusFilter selects tasks by completion state.
type StatusFilter string

// Status filter values.
const (
	FilterAll       StatusFilter = "all"
	FilterActive    StatusFilter = "active"
	FilterCompleted StatusFilter = "completed"
	FilterOverdue   StatusFilter = "overdue"
)

// ParseStatusFilter validates a filter name from user input.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(s); f {
	case FilterAll, FilterActive, FilterCompleted, FilterOverdue:
		return f, nil
	default:
		return "", clierr.Newf(clierr.InvalidFilter,
			"invalid filter %q (all, active, completed, overdue)", s).
			WithDetails(map[string]any{"filter": s})
	}
}

// Options defines which tasks to include and how to order them.
type Options struct {
	Status StatusFilter
	Search string // case-insensitive substring match on text or subject
	Sorted bool   // priority sort; false keeps the manual order
}

// Filter returns the tasks passing the status filter and then the
// search filter, preserving input order. The result is never nil.
func Filter(tasks []*task.Task, opts Options, now time.Time) []*task.Task {
	result := []*task.Task{}
	for _, t := range tasks {
		if !matchesStatus(t, opts.Status, now) {
			continue
		}
		if !matchesSearch(t, opts.Search) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func matchesStatus(t *task.Task, f StatusFilter, now time.Time) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterOverdue:
		return t.IsOverdue(now)
	default: // FilterAll or unset
		return true
	}
}

// matchesSearch performs case-insensitive substring matching across
// task text and subject. An empty query passes everything.
func matchesSearch(t *task.Task, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Text), q) {
		return true
	}
	return strings.Contains(strings.ToLower(t.Subject), q)
}
