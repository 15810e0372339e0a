package stats

import (
	"time"

	"github.com/studyflowhq/studyflow/internal/date"
	"github.com/studyflowhq/studyflow/internal/session"
	"github.com/studyflowhq/studyflow/internal/task"
)

// streakWindow caps how far back the streak walk looks. A streak can
// never exceed this many days.
const streakWindow = 30

// Streak counts consecutive active days ending at now. A day is active
// when any task was completed or any session finished on that calendar
// date. A quiet today does not break the walk (the streak earned
// through yesterday still stands); a quiet day any further back does.
func Streak(tasks []*task.Task, sessions []*session.Session, now time.Time) int {
	active := make(map[string]bool)
	for _, t := range tasks {
		if t.CompletedAt != nil {
			active[date.FromTime(*t.CompletedAt).String()] = true
		}
	}
	for _, s := range sessions {
		active[date.FromTime(s.CompletedAt).String()] = true
	}

	today := date.FromTime(now)
	streak := 0
	for offset := 0; offset < streakWindow; offset++ {
		day := today.AddDays(-offset)
		if active[day.String()] {
			streak++
			continue
		}
		if offset == 0 {
			// Today has no activity yet; keep walking from yesterday.
			continue
		}
		break
	}
	return streak
}
