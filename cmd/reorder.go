package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/studyflowhq/studyflow/internal/output"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder ID,ID,...",
	Short: "Rearrange the manual task order",
	Long: `Repositions tasks to match the given id sequence. The sequence may
be partial: listed tasks come first in the given order, unlisted tasks
keep their relative order after them, and unknown ids are ignored.

The manual order is what list shows by default; sorted views derive
from it without overwriting it.`,
	Args: cobra.ExactArgs(1),
	RunE: runReorder,
}

func init() {
	rootCmd.AddCommand(reorderCmd)
}

func runReorder(_ *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	if err := a.tasks.Reorder(ids); err != nil {
		return err
	}
	logActivity(a.cfg, "reorder", 0, args[0])

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, a.tasks.All())
	}

	output.Messagef(os.Stdout, "Reordered %d task(s)", len(ids))
	return nil
}
