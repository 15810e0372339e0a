// Package stats computes aggregate views over task and session
// snapshots: completion progress, motivation tiers, activity streaks,
// subject breakdowns, and the weekly activity series. All functions
// are pure; callers pass snapshots and a clock.
package stats

import (
	"math"

	"github.com/studyflowhq/studyflow/internal/task"
)

// ProgressPercent returns the rounded completion percentage, or 0 for
// an empty task list.
func ProgressPercent(tasks []*task.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(tasks))))
}

// Tier is a motivation band derived from the completion percentage.
type Tier struct {
	Message   string `json:"message"`
	Celebrate bool   `json:"celebrate"` // set only on the 100% tier with at least one task
}

// MotivationTier maps a completion percentage into one of six bands.
// hasAnyTask distinguishes "nothing to do yet" from "0% done".
func MotivationTier(percent int, hasAnyTask bool) Tier {
	switch {
	case !hasAnyTask:
		return Tier{Message: "Start adding tasks!"}
	case percent == 100:
		return Tier{Message: "All done! Amazing!", Celebrate: true}
	case percent >= 75:
		return Tier{Message: "Almost there! Keep going!"}
	case percent >= 50:
		return Tier{Message: "Halfway! You've got this!"}
	case percent >= 25:
		return Tier{Message: "Getting started! Push forward!"}
	default:
		return Tier{Message: "Just beginning? Every step counts!"}
	}
}
