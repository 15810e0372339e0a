package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/studyflowhq/studyflow/internal/tui"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Run a focus session",
	Long: `Opens the focus timer loaded with the configured duration. When the
countdown expires, a session is recorded and linked to the first
incomplete task.`,
	RunE: runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
}

func runFocus(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	model := tui.NewFocus(a.tasks, a.sessions, a.settings)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
