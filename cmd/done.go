package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/studyflowhq/studyflow/internal/output"
)

var doneCmd = &cobra.Command{
	Use:     "done ID[,ID,...]",
	Aliases: []string{"toggle"},
	Short:   "Toggle task completion",
	Long: `Flips the completion state of the given task(s). Completing a task
stamps its completion time; reopening clears it.`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(_ *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	if len(ids) > 1 {
		return runBatch(ids, func(id int) error {
			t, err := a.tasks.ToggleComplete(id)
			if err != nil {
				return err
			}
			logActivity(a.cfg, "toggle", t.ID, t.Text)
			return nil
		})
	}

	t, err := a.tasks.ToggleComplete(ids[0])
	if err != nil {
		return err
	}
	logActivity(a.cfg, "toggle", t.ID, t.Text)

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}

	if t.Completed {
		output.Messagef(os.Stdout, "Completed task #%d: %s", t.ID, t.Text)
	} else {
		output.Messagef(os.Stdout, "Reopened task #%d: %s", t.ID, t.Text)
	}
	return nil
}
