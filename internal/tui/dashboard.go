package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studyflowhq/studyflow/internal/config"
	"github.com/studyflowhq/studyflow/internal/query"
	"github.com/studyflowhq/studyflow/internal/stats"
	"github.com/studyflowhq/studyflow/internal/store"
	"github.com/studyflowhq/studyflow/internal/task"
)

// ReloadMsg tells the dashboard to reload state from disk.
type ReloadMsg struct{}

// view represents the current dashboard screen.
type view int

const (
	viewList view = iota
	viewConfirmDelete
)

// filterCycle is the order the f key steps through.
var filterCycle = []query.StatusFilter{
	query.FilterAll,
	query.FilterActive,
	query.FilterCompleted,
	query.FilterOverdue,
}

// dashKeys defines the dashboard key bindings.
type dashKeys struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Filter key.Binding
	Sort   key.Binding
	Search key.Binding
	Quit   key.Binding
}

var defaultDashKeys = dashKeys{
	Up:     key.NewBinding(key.WithKeys("k", "up")),
	Down:   key.NewBinding(key.WithKeys("j", "down")),
	Toggle: key.NewBinding(key.WithKeys("x", "enter"), key.WithHelp("x", "toggle done")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
	Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

// Dashboard is the top-level bubbletea model: the task list with its
// derived views, progress, streak, and weekly activity.
type Dashboard struct {
	cfg      *config.Config
	tasks    *store.Tasks
	sessions *store.Sessions
	settings *store.Settings
	theme    Theme
	keys     dashKeys

	visible   []*task.Task
	filterIdx int
	sorted    bool
	search    textinput.Model
	searching bool

	view      view
	activeRow int
	width     int
	height    int
	err       error
	now       func() time.Time

	// Delete confirmation.
	deleteID   int
	deleteText string
}

// NewDashboard creates the dashboard model over the given stores.
func NewDashboard(cfg *config.Config, tasks *store.Tasks, sessions *store.Sessions, settings *store.Settings) *Dashboard {
	search := textinput.New()
	search.Placeholder = "search text or subject"
	search.Prompt = "/ "
	search.CharLimit = 64

	d := &Dashboard{
		cfg:      cfg,
		tasks:    tasks,
		sessions: sessions,
		settings: settings,
		theme:    themeFor(settings.Theme()),
		keys:     defaultDashKeys,
		search:   search,
		now:      time.Now,
	}
	d.refresh()
	return d
}

// SetNow overrides the clock (for testing).
func (d *Dashboard) SetNow(fn func() time.Time) {
	d.now = fn
	d.refresh()
}

// WatchPaths returns the paths the live-reload watcher should monitor.
func (d *Dashboard) WatchPaths() []string {
	return []string{d.cfg.Dir()}
}

// refresh recomputes the visible task view from the store snapshot.
func (d *Dashboard) refresh() {
	opts := query.Options{
		Status: filterCycle[d.filterIdx],
		Search: d.search.Value(),
		Sorted: d.sorted,
	}
	d.visible = query.FilterAndSort(d.tasks.All(), opts, d.cfg.Priorities, d.now())
	d.clampRow()
}

func (d *Dashboard) clampRow() {
	if d.activeRow >= len(d.visible) {
		d.activeRow = len(d.visible) - 1
	}
	if d.activeRow < 0 {
		d.activeRow = 0
	}
}

// Init implements tea.Model.
func (d *Dashboard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return d.handleKey(msg)
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		return d, nil
	case ReloadMsg:
		d.reload()
		return d, nil
	}
	return d, nil
}

// reload re-reads every store from disk. Another process may have
// moved the id counters, so the config is reloaded too.
func (d *Dashboard) reload() {
	cfg, err := config.Load(d.cfg.Dir())
	if err != nil {
		d.err = err
		return
	}
	adapter := store.NewAdapter(cfg.Dir())
	d.cfg = cfg
	d.tasks = store.NewTasks(adapter, cfg)
	d.sessions = store.NewSessions(adapter, cfg)
	d.settings = store.NewSettings(adapter)
	d.theme = themeFor(d.settings.Theme())
	d.err = nil
	d.refresh()
}

func (d *Dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if d.view == viewConfirmDelete {
		return d.handleDeleteKey(msg)
	}
	if d.searching {
		return d.handleSearchKey(msg)
	}
	return d.handleListKey(msg)
}

func (d *Dashboard) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Quit):
		return d, tea.Quit
	case key.Matches(msg, d.keys.Up):
		if d.activeRow > 0 {
			d.activeRow--
		}
	case key.Matches(msg, d.keys.Down):
		if d.activeRow < len(d.visible)-1 {
			d.activeRow++
		}
	case key.Matches(msg, d.keys.Toggle):
		if t := d.selected(); t != nil {
			if _, err := d.tasks.ToggleComplete(t.ID); err != nil {
				d.err = err
			}
			d.refresh()
		}
	case key.Matches(msg, d.keys.Delete):
		if t := d.selected(); t != nil {
			d.deleteID = t.ID
			d.deleteText = t.Text
			d.view = viewConfirmDelete
		}
	case key.Matches(msg, d.keys.Filter):
		d.filterIdx = (d.filterIdx + 1) % len(filterCycle)
		d.activeRow = 0
		d.refresh()
	case key.Matches(msg, d.keys.Sort):
		d.sorted = !d.sorted
		d.refresh()
	case key.Matches(msg, d.keys.Search):
		d.searching = true
		d.search.Focus()
		return d, textinput.Blink
	}
	return d, nil
}

func (d *Dashboard) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		d.searching = false
		d.search.Blur()
		if msg.String() == "esc" {
			d.search.SetValue("")
		}
		d.refresh()
		return d, nil
	}

	var cmd tea.Cmd
	d.search, cmd = d.search.Update(msg)
	d.refresh()
	return d, cmd
}

func (d *Dashboard) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if err := d.tasks.Delete(d.deleteID); err != nil {
			d.err = err
		}
		d.view = viewList
		d.refresh()
	case "n", "esc":
		d.view = viewList
	}
	return d, nil
}

func (d *Dashboard) selected() *task.Task {
	if d.activeRow < 0 || d.activeRow >= len(d.visible) {
		return nil
	}
	return d.visible[d.activeRow]
}

// View implements tea.Model.
func (d *Dashboard) View() string {
	if d.width == 0 {
		return "Loading..."
	}
	if d.view == viewConfirmDelete {
		return d.viewDeleteConfirm()
	}
	return d.viewList()
}

func (d *Dashboard) viewDeleteConfirm() string {
	t := d.theme
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render("Delete task?"),
		"",
		fmt.Sprintf("  #%d %s", d.deleteID, d.deleteText),
		"",
		t.StatusBar.Render("y confirm · n cancel"),
	)
}

func (d *Dashboard) viewList() string {
	t := d.theme
	var b strings.Builder

	b.WriteString(t.Title.Render("studyflow"))
	b.WriteString("\n\n")
	b.WriteString(d.viewProgress())
	b.WriteString("\n")

	if d.searching || d.search.Value() != "" {
		b.WriteString(d.search.View())
		b.WriteString("\n")
	}

	if len(d.visible) == 0 {
		b.WriteString(t.Dim.Render("No tasks match your criteria."))
		b.WriteString("\n")
	}
	for i, row := range d.visible {
		b.WriteString(d.renderRow(row, i == d.activeRow))
		b.WriteString("\n")
	}

	if d.err != nil {
		b.WriteString("\n")
		b.WriteString(t.Overdue.Render("error: " + d.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(d.viewStatusBar())
	return b.String()
}

func (d *Dashboard) viewProgress() string {
	t := d.theme
	all := d.tasks.All()
	percent := stats.ProgressPercent(all)
	tier := stats.MotivationTier(percent, len(all) > 0)
	streak := stats.Streak(all, d.sessions.All(), d.now())

	line := fmt.Sprintf("%d%% complete · streak %d day(s)", percent, streak)
	msg := t.Dim.Render(tier.Message)
	if tier.Celebrate {
		msg = t.Notice.Render(tier.Message)
	}
	return line + "\n" + msg + "\n" + d.viewWeek()
}

// viewWeek renders the 7-day focus series as a one-line sparkline.
func (d *Dashboard) viewWeek() string {
	series := stats.WeeklySeries(d.tasks.All(), d.sessions.All(), d.now())
	ramp := []rune(" ▁▂▃▄▅▆▇█")

	maxMinutes := 0
	for _, day := range series {
		if day.FocusMinutes > maxMinutes {
			maxMinutes = day.FocusMinutes
		}
	}

	var spark strings.Builder
	for _, day := range series {
		idx := 0
		if maxMinutes > 0 {
			idx = day.FocusMinutes * (len(ramp) - 1) / maxMinutes
		}
		spark.WriteRune(ramp[idx])
	}
	return d.theme.Dim.Render("week " + spark.String())
}

func (d *Dashboard) renderRow(row *task.Task, active bool) string {
	t := d.theme

	mark := "[ ]"
	text := row.Text
	if row.Completed {
		mark = "[x]"
		text = t.Done.Render(text)
	} else if row.IsOverdue(d.now()) {
		text = t.Overdue.Render(text)
	}

	meta := row.Priority + " · " + row.Subject
	if row.Due != nil {
		meta += " · due " + row.Due.String()
	}

	line := fmt.Sprintf("%s #%d %s  %s", mark, row.ID, text, t.Dim.Render(meta))
	if active {
		return t.Selected.Render("> " + line)
	}
	return "  " + line
}

func (d *Dashboard) viewStatusBar() string {
	mode := "manual order"
	if d.sorted {
		mode = "priority sort"
	}
	left := fmt.Sprintf("filter: %s · %s", filterCycle[d.filterIdx], mode)
	help := "j/k move · x toggle · d delete · f filter · s sort · / search · q quit"
	return d.theme.StatusBar.Render(left + "\n" + help)
}
