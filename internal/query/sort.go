package query

import (
	"sort"
	"time"

	"github.com/studyflowhq/studyflow/internal/task"
)

// FilterAndSort applies the status and search filters and, when
// opts.Sorted is set, orders the result by priority rank (highest
// first) with newest-created breaking ties. Without Sorted the manual
// order survives filtering untouched.
//
// The sort operates on a copy of the filtered view; the stored manual
// order is never rewritten by a derived sort.
func FilterAndSort(tasks []*task.Task, opts Options, priorities []string, now time.Time) []*task.Task {
	result := Filter(tasks, opts, now)
	if !opts.Sorted {
		return result
	}

	rank := make(map[string]int, len(priorities))
	for i, p := range priorities {
		rank[p] = i
	}

	sort.SliceStable(result, func(i, j int) bool {
		ri, rj := priorityRank(result[i], rank), priorityRank(result[j], rank)
		if ri != rj {
			return ri < rj
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// priorityRank returns the task's position in the configured priority
// order. Unknown priorities sort last.
func priorityRank(t *task.Task, rank map[string]int) int {
	if r, ok := rank[t.Priority]; ok {
		return r
	}
	return len(rank)
}
