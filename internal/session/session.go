// Package session defines the focus session record.
package session

import "time"

// Session represents a completed focus interval. LinkedTask is a weak
// reference: it may point at a task that has since been deleted, and
// consumers render such references as "(deleted task)".
type Session struct {
	ID          int       `json:"id"`
	Minutes     int       `json:"minutes"`
	CompletedAt time.Time `json:"completed_at"`
	LinkedTask  *int      `json:"linked_task,omitempty"`
}
