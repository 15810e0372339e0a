package stats

import (
	"math"

	"github.com/studyflowhq/studyflow/internal/task"
)

// SubjectCount holds completion counts for a single subject.
type SubjectCount struct {
	Subject   string `json:"subject"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Percent   int    `json:"percent"`
}

// otherSubject collects tasks whose subject is not in the configured
// enumeration (e.g. after the subject list was edited).
const otherSubject = "other"

// SubjectBreakdown returns per-subject completion counts in the order
// of the given subject enumeration. Tasks with unlisted subjects fold
// into a trailing "other" row so totals always add up.
func SubjectBreakdown(tasks []*task.Task, subjects []string) []SubjectCount {
	index := make(map[string]int, len(subjects)+1)
	counts := make([]SubjectCount, 0, len(subjects)+1)
	for _, s := range subjects {
		index[s] = len(counts)
		counts = append(counts, SubjectCount{Subject: s})
	}

	other := SubjectCount{Subject: otherSubject}
	for _, t := range tasks {
		i, ok := index[t.Subject]
		row := &other
		if ok {
			row = &counts[i]
		}
		row.Total++
		if t.Completed {
			row.Completed++
		}
	}

	if other.Total > 0 {
		counts = append(counts, other)
	}

	for i := range counts {
		if counts[i].Total > 0 {
			counts[i].Percent = int(math.Round(100 * float64(counts[i].Completed) / float64(counts[i].Total)))
		}
	}
	return counts
}
