// Package task defines the task entity and its validation rules.
package task

import (
	"time"

	"github.com/studyflowhq/studyflow/internal/date"
)

// Task represents a single to-do item with scheduling metadata.
type Task struct {
	ID          int        `json:"id"`
	Text        string     `json:"text"`
	Subject     string     `json:"subject"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Due         *date.Date `json:"due,omitempty"`
}

// IsOverdue reports whether the task is incomplete with a due date in
// the past relative to now (day granularity).
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Completed || t.Due == nil {
		return false
	}
	return t.Due.Before(date.FromTime(now).Time)
}
