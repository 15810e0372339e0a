package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/studyflowhq/studyflow/internal/session"
	"github.com/studyflowhq/studyflow/internal/stats"
	"github.com/studyflowhq/studyflow/internal/task"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	boldStyle   = lipgloss.NewStyle().Bold(true)

	// Overdue rows render red, matching the reference UI.
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	subjectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))

	priorityStyles = map[string]lipgloss.Style{
		"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
)

// DisableColor strips all styling from table output.
func DisableColor() {
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	doneStyle = lipgloss.NewStyle()
	boldStyle = lipgloss.NewStyle()
	overdueStyle = lipgloss.NewStyle()
	subjectStyle = lipgloss.NewStyle()
	priorityStyles = map[string]lipgloss.Style{}
}

// TaskTable renders a list of tasks as a formatted table.
func TaskTable(w io.Writer, tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks match your criteria.")
		return
	}

	// Calculate column widths.
	const pad = 2
	idW, stateW, prioW, textW, subjW := 4, 6, 10, 6, 9
	for _, t := range tasks {
		idW = max(idW, len(strconv.Itoa(t.ID))+pad)
		prioW = max(prioW, len(t.Priority)+pad)
		textW = max(textW, min(len(t.Text)+pad, 50)) //nolint:mnd // max text column width
		subjW = max(subjW, len(t.Subject)+pad)
	}

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s %s",
		idW, "ID", stateW, "STATE", prioW, "PRIORITY",
		textW, "TEXT", subjW, "SUBJECT", "DUE")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	for _, t := range tasks {
		fmt.Fprintln(w, strings.TrimRight(taskRow(t, idW, stateW, prioW, textW, subjW), " "))
	}
}

func taskRow(t *task.Task, idW, stateW, prioW, textW, subjW int) string {
	text := t.Text
	const maxText = 48
	if len(text) > maxText {
		text = text[:maxText-3] + "..."
	}

	state := "open"
	if t.Completed {
		state = doneStyle.Render("done")
	}

	due := dimStyle.Render("--")
	if t.Due != nil {
		due = t.Due.String()
		if t.IsOverdue(time.Now()) {
			due = overdueStyle.Render(due)
		}
	}

	return fmt.Sprintf("%-*d %s %s %s %s %s",
		idW, t.ID,
		padRight(state, stateW),
		padRight(styledPriority(t.Priority), prioW),
		padRight(text, textW),
		padRight(subjectStyle.Render(t.Subject), subjW),
		due)
}

// TaskDetail renders a single task with full detail.
func TaskDetail(w io.Writer, t *task.Task) {
	titleLine := fmt.Sprintf("Task #%d: %s", t.ID, t.Text)
	fmt.Fprintln(w, boldStyle.Render(titleLine))
	fmt.Fprintln(w, strings.Repeat("─", len(titleLine)))

	state := "open"
	if t.Completed {
		state = doneStyle.Render("done")
	}
	printField(w, "State", state)
	printField(w, "Priority", styledPriority(t.Priority))
	printField(w, "Subject", subjectStyle.Render(t.Subject))
	if t.Due != nil {
		printField(w, "Due", t.Due.String())
	} else {
		printField(w, "Due", dimStyle.Render("--"))
	}
	printField(w, "Created", t.CreatedAt.Format("2006-01-02 15:04"))
	if t.CompletedAt != nil {
		printField(w, "Completed", t.CompletedAt.Format("2006-01-02 15:04"))
	}
}

// SessionTable renders focus sessions as a formatted table. taskText
// resolves a linked task id to its display text and reports whether
// the task still exists.
func SessionTable(w io.Writer, sessions []*session.Session, taskText func(id int) (string, bool)) {
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "No sessions recorded today.")
		return
	}

	header := fmt.Sprintf("%-4s %-18s %-9s %s", "ID", "COMPLETED", "MINUTES", "TASK")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	for _, s := range sessions {
		linked := dimStyle.Render("--")
		if s.LinkedTask != nil {
			if text, ok := taskText(*s.LinkedTask); ok {
				linked = text
			} else {
				linked = dimStyle.Render("(deleted task)")
			}
		}
		row := fmt.Sprintf("%-4d %-18s %-9d %s",
			s.ID, s.CompletedAt.Format("2006-01-02 15:04"), s.Minutes, linked)
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// Overview is the aggregate statistics view produced for the stats
// command, assembled by the caller from the stats package.
type Overview struct {
	TotalTasks int                  `json:"total_tasks"`
	Completed  int                  `json:"completed"`
	Percent    int                  `json:"percent"`
	Tier       stats.Tier           `json:"tier"`
	Streak     int                  `json:"streak"`
	Subjects   []stats.SubjectCount `json:"subjects"`
	Week       []stats.DayActivity  `json:"week"`
}

// OverviewTable renders the statistics overview as a dashboard.
func OverviewTable(w io.Writer, o Overview) {
	fmt.Fprintln(w, boldStyle.Render("Progress"))
	fmt.Fprintf(w, "%d%% complete (%d/%d tasks)  streak: %d day(s)\n",
		o.Percent, o.Completed, o.TotalTasks, o.Streak)
	fmt.Fprintln(w, o.Tier.Message)
	fmt.Fprintln(w)

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-12s %6s %6s %8s", "SUBJECT", "DONE", "TOTAL", "PERCENT")))
	for _, row := range o.Subjects {
		pct := strconv.Itoa(row.Percent) + "%"
		if row.Total == 0 {
			pct = dimStyle.Render("--")
		}
		fmt.Fprintf(w, "%-12s %6d %6d %8s\n", row.Subject, row.Completed, row.Total, pct)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-12s %7s %6s", "DAY", "FOCUS", "DONE")))
	for _, day := range o.Week {
		fmt.Fprintf(w, "%-12s %6dm %6d\n", day.Date.String(), day.FocusMinutes, day.TasksCompleted)
	}
}

func styledPriority(priority string) string {
	if style, ok := priorityStyles[priority]; ok {
		return style.Render(priority)
	}
	return priority
}

// printField prints an aligned "Label: value" detail line.
func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%-11s %s\n", label+":", value)
}

// padRight pads a possibly styled string to the given visible width.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
