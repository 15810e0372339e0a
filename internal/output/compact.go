package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/studyflowhq/studyflow/internal/session"
	"github.com/studyflowhq/studyflow/internal/task"
)

// TaskCompact renders a list of tasks in one-line-per-record compact format.
func TaskCompact(w io.Writer, tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks match your criteria.")
		return
	}

	for _, t := range tasks {
		fmt.Fprintln(w, formatTaskLine(t))
	}
}

// SessionCompact renders sessions in compact format.
func SessionCompact(w io.Writer, sessions []*session.Session) {
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "No sessions recorded today.")
		return
	}

	for _, s := range sessions {
		line := "#" + strconv.Itoa(s.ID) + " " +
			s.CompletedAt.Format("15:04") + " " +
			strconv.Itoa(s.Minutes) + "m"
		if s.LinkedTask != nil {
			line += " task:" + strconv.Itoa(*s.LinkedTask)
		}
		fmt.Fprintln(w, line)
	}
}

// OverviewCompact renders the statistics overview in compact format.
func OverviewCompact(w io.Writer, o Overview) {
	fmt.Fprintf(w, "%d%% (%d/%d) streak=%d\n", o.Percent, o.Completed, o.TotalTasks, o.Streak)

	parts := make([]string, 0, len(o.Subjects))
	for _, row := range o.Subjects {
		if row.Total == 0 {
			continue
		}
		parts = append(parts, row.Subject+"="+strconv.Itoa(row.Completed)+"/"+strconv.Itoa(row.Total))
	}
	if len(parts) > 0 {
		fmt.Fprintln(w, "Subjects: "+strings.Join(parts, " "))
	}

	week := make([]string, 0, len(o.Week))
	for _, day := range o.Week {
		week = append(week, day.Date.Format("01-02")+":"+strconv.Itoa(day.FocusMinutes)+"m/"+strconv.Itoa(day.TasksCompleted))
	}
	fmt.Fprintln(w, "Week: "+strings.Join(week, " "))
}

// formatTaskLine builds the one-line representation of a task.
func formatTaskLine(t *task.Task) string {
	state := "open"
	if t.Completed {
		state = "done"
	}
	line := "#" + strconv.Itoa(t.ID) + " [" + state + "/" + t.Priority + "] " + t.Text

	line += " (" + t.Subject + ")"
	if t.Due != nil {
		line += " due:" + t.Due.String()
	}

	return line
}
