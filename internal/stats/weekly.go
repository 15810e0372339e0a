package stats

import (
	"time"

	"github.com/studyflowhq/studyflow/internal/date"
	"github.com/studyflowhq/studyflow/internal/session"
	"github.com/studyflowhq/studyflow/internal/task"
)

// weeklyDays is the length of the trend series.
const weeklyDays = 7

// DayActivity aggregates one calendar day of activity.
type DayActivity struct {
	Date           date.Date `json:"date"`
	FocusMinutes   int       `json:"focus_minutes"`
	TasksCompleted int       `json:"tasks_completed"`
}

// WeeklySeries returns activity per calendar day for the last seven
// days, oldest to newest, ending with today.
func WeeklySeries(tasks []*task.Task, sessions []*session.Session, now time.Time) []DayActivity {
	today := date.FromTime(now)

	series := make([]DayActivity, weeklyDays)
	byDay := make(map[string]*DayActivity, weeklyDays)
	for i := range series {
		d := today.AddDays(i - (weeklyDays - 1))
		series[i].Date = d
		byDay[d.String()] = &series[i]
	}

	for _, s := range sessions {
		if row, ok := byDay[date.FromTime(s.CompletedAt).String()]; ok {
			row.FocusMinutes += s.Minutes
		}
	}
	for _, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		if row, ok := byDay[date.FromTime(*t.CompletedAt).String()]; ok {
			row.TasksCompleted++
		}
	}

	return series
}
