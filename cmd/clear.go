package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studyflowhq/studyflow/internal/clierr"
	"github.com/studyflowhq/studyflow/internal/output"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all tasks and sessions",
	Long: `Clear removes every task and every recorded focus session from the
data directory. Settings and the configuration file are kept.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	taskCount := a.tasks.Len()
	sessionCount := len(a.sessions.All())

	if !clearYes {
		question := fmt.Sprintf("Delete %d tasks and %d sessions? This cannot be undone. [y/N] ", taskCount, sessionCount)
		if !confirmPrompt(question) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			return &clierr.SilentError{Code: 1}
		}
	}

	if err := a.tasks.ClearAll(); err != nil {
		return err
	}
	if err := a.sessions.ClearAll(); err != nil {
		return err
	}

	logActivity(a.cfg, "clear", 0, fmt.Sprintf("tasks=%d sessions=%d", taskCount, sessionCount))

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]int{
			"tasks_deleted":    taskCount,
			"sessions_deleted": sessionCount,
		})
	}
	output.Messagef(os.Stdout, "Deleted %d tasks and %d sessions", taskCount, sessionCount)
	return nil
}
