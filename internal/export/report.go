// Package export builds human-readable reports from a full task and
// session snapshot plus computed statistics. Output is read-only:
// nothing here feeds back into the stores.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/studyflowhq/studyflow/internal/session"
	"github.com/studyflowhq/studyflow/internal/stats"
	"github.com/studyflowhq/studyflow/internal/task"
)

// Snapshot bundles everything a report needs.
type Snapshot struct {
	Tasks    []*task.Task
	Sessions []*session.Session
	Subjects []string
	Now      time.Time
}

// Markdown renders the snapshot as a markdown report: summary figures,
// the full task list with status glyphs, and today's focus sessions.
func Markdown(s Snapshot) string {
	var b strings.Builder

	b.WriteString("# Study Report\n\n")
	fmt.Fprintf(&b, "Generated on %s\n\n", s.Now.Format("2006-01-02 15:04"))

	writeSummary(&b, s)
	writeTaskList(&b, s)
	writeSubjects(&b, s)
	writeWeek(&b, s)

	return b.String()
}

func writeSummary(b *strings.Builder, s Snapshot) {
	completed, overdue := 0, 0
	for _, t := range s.Tasks {
		if t.Completed {
			completed++
		}
		if t.IsOverdue(s.Now) {
			overdue++
		}
	}
	percent := stats.ProgressPercent(s.Tasks)
	streak := stats.Streak(s.Tasks, s.Sessions, s.Now)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(b, "- Total tasks: %d\n", len(s.Tasks))
	fmt.Fprintf(b, "- Completed: %d (%d%%)\n", completed, percent)
	fmt.Fprintf(b, "- Overdue: %d\n", overdue)
	fmt.Fprintf(b, "- Streak: %d day(s)\n", streak)
	fmt.Fprintf(b, "- Focus sessions recorded: %d\n\n", len(s.Sessions))
}

func writeTaskList(b *strings.Builder, s Snapshot) {
	b.WriteString("## Tasks\n\n")
	if len(s.Tasks) == 0 {
		b.WriteString("No tasks yet.\n\n")
		return
	}
	for _, t := range s.Tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("- [%s] %s [%s] [%s]", mark, t.Text, strings.ToUpper(t.Priority), t.Subject)
		if t.Due != nil {
			line += " due " + t.Due.String()
			if t.IsOverdue(s.Now) {
				line += " (overdue)"
			}
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func writeSubjects(b *strings.Builder, s Snapshot) {
	rows := stats.SubjectBreakdown(s.Tasks, s.Subjects)
	b.WriteString("## Subjects\n\n")
	for _, row := range rows {
		if row.Total == 0 {
			continue
		}
		fmt.Fprintf(b, "- %s: %d/%d (%d%%)\n", row.Subject, row.Completed, row.Total, row.Percent)
	}
	b.WriteString("\n")
}

func writeWeek(b *strings.Builder, s Snapshot) {
	series := stats.WeeklySeries(s.Tasks, s.Sessions, s.Now)
	b.WriteString("## Last 7 days\n\n")
	for _, day := range series {
		fmt.Fprintf(b, "- %s: %d min focus, %d task(s) completed\n",
			day.Date.String(), day.FocusMinutes, day.TasksCompleted)
	}
	b.WriteString("\n")
}

// Text renders the snapshot as plain text by stripping the markdown
// heading markers. Good enough for piping into a file or a printer.
func Text(s Snapshot) string {
	md := Markdown(s)
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, "# ")
	}
	return strings.Join(lines, "\n")
}
