package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/studyflowhq/studyflow/internal/tui"
	"github.com/studyflowhq/studyflow/internal/watcher"
)

func runDashboard(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	model := tui.NewDashboard(a.cfg, a.tasks, a.sessions, a.settings)
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go startDashboardWatcher(ctx, model, p)

	_, err = p.Run()
	return err
}

func startDashboardWatcher(ctx context.Context, model *tui.Dashboard, p *tea.Program) {
	w, err := watcher.New(model.WatchPaths(), func() {
		p.Send(tui.ReloadMsg{})
	})
	if err != nil {
		return // non-fatal: the dashboard works without live refresh
	}
	defer w.Close()
	w.Run(ctx, nil)
}
