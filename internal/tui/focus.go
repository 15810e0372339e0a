package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studyflowhq/studyflow/internal/store"
	"github.com/studyflowhq/studyflow/internal/timer"
)

// TickMsg advances the countdown by one second. The tag identifies
// which tick chain the message belongs to; messages from a chain that
// was cancelled by pause or reset carry a stale tag and are dropped,
// so at most one chain ever drives the timer.
type TickMsg struct {
	tag int
}

// focusKeys defines the focus view key bindings.
type focusKeys struct {
	Toggle key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

var defaultFocusKeys = focusKeys{
	Toggle: key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "start/pause")),
	Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Focus is the bubbletea model hosting the countdown state machine.
// The machine itself lives in the timer package; this model feeds it
// one TickMsg per second while it runs and records a session when it
// expires.
type Focus struct {
	timer    *timer.Timer
	tasks    *store.Tasks
	sessions *store.Sessions
	settings *store.Settings
	theme    Theme
	keys     focusKeys
	bar      progress.Model
	width    int
	notice   string
	err      error

	// tag is the current tick chain. Bumped on pause and reset to
	// invalidate the chain's pending TickMsg.
	tag int
}

// tickCmd schedules the next tick of the current chain.
func (f *Focus) tickCmd() tea.Cmd {
	tag := f.tag
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TickMsg{tag: tag}
	})
}

// NewFocus creates the focus timer model loaded with the configured
// duration.
func NewFocus(tasks *store.Tasks, sessions *store.Sessions, settings *store.Settings) *Focus {
	bar := progress.New(progress.WithDefaultGradient())
	return &Focus{
		timer:    timer.New(settings.FocusMinutes()),
		tasks:    tasks,
		sessions: sessions,
		settings: settings,
		theme:    themeFor(settings.Theme()),
		keys:     defaultFocusKeys,
		bar:      bar,
	}
}

// Init implements tea.Model.
func (f *Focus) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (f *Focus) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return f.handleKey(msg)
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.bar.Width = min(msg.Width-4, 60) //nolint:mnd // bar margin and cap
		return f, nil
	case TickMsg:
		return f.handleTick(msg)
	}
	return f, nil
}

func (f *Focus) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, f.keys.Quit):
		return f, tea.Quit
	case key.Matches(msg, f.keys.Toggle):
		switch f.timer.State() {
		case timer.Running:
			// Cancel the pending tick along with the countdown, so a
			// quick pause/resume cannot leave two chains decrementing.
			f.tag++
			f.timer.Pause()
			return f, nil
		default:
			f.notice = ""
			f.timer.Start()
			return f, f.tickCmd()
		}
	case key.Matches(msg, f.keys.Reset):
		f.tag++
		f.timer.Reset(f.settings.FocusMinutes())
		return f, nil
	}
	return f, nil
}

func (f *Focus) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.tag != f.tag {
		// A tick from a chain cancelled by pause or reset.
		return f, nil
	}
	if f.timer.State() != timer.Running {
		return f, nil
	}

	if expired := f.timer.Tick(); expired {
		f.recordSession()
		return f, nil
	}
	return f, f.tickCmd()
}

// recordSession persists the completed focus interval, linked to the
// first incomplete task when one exists.
func (f *Focus) recordSession() {
	var linked *int
	if t := f.tasks.FirstIncomplete(); t != nil {
		linked = &t.ID
	}

	sess, err := f.sessions.RecordCompletion(f.settings.FocusMinutes(), linked)
	if err != nil {
		f.err = err
		return
	}

	f.notice = fmt.Sprintf("Focus session complete: %d minutes. Take a break!", sess.Minutes)
}

// View implements tea.Model.
func (f *Focus) View() string {
	t := f.theme

	header := t.Title.Render("Focus Timer")
	clock := lipgloss.NewStyle().Bold(true).Render(f.timer.Clock())
	state := t.Dim.Render(f.timer.State().String())

	total := f.timer.Minutes() * 60
	done := float64(total-f.timer.Remaining()) / float64(total)
	bar := f.bar.ViewAs(done)

	lines := []string{
		header,
		"",
		clock + "  " + state,
		bar,
		"",
	}

	if f.notice != "" {
		lines = append(lines, t.Notice.Render(f.notice), "")
	}
	if f.err != nil {
		lines = append(lines, t.Overdue.Render("error: "+f.err.Error()), "")
	}

	if next := f.tasks.FirstIncomplete(); next != nil {
		lines = append(lines, t.Dim.Render("Up next: ")+next.Text, "")
	}

	help := t.StatusBar.Render("s start/pause · r reset · q quit")
	lines = append(lines, help)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
