package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyflowhq/studyflow/internal/clierr"
	"github.com/studyflowhq/studyflow/internal/output"
	"github.com/studyflowhq/studyflow/internal/query"
	"github.com/studyflowhq/studyflow/internal/task"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `Lists tasks with optional filtering, search, and sorting.

The default order is the manual order (as arranged with reorder).
--sort priority derives a priority-sorted view without touching the
stored manual order.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringP("filter", "f", "all", "status filter (all, active, completed, overdue)")
	listCmd.Flags().StringP("search", "s", "", "search tasks by text or subject (case-insensitive)")
	listCmd.Flags().String("sort", "manual", "sort order (manual, priority)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	filterName, _ := cmd.Flags().GetString("filter")
	search, _ := cmd.Flags().GetString("search")
	sortBy, _ := cmd.Flags().GetString("sort")

	status, err := query.ParseStatusFilter(filterName)
	if err != nil {
		return err
	}
	if sortBy != "manual" && sortBy != "priority" {
		return clierr.Newf(clierr.InvalidInput, "invalid --sort %q (manual, priority)", sortBy)
	}

	opts := query.Options{
		Status: status,
		Search: search,
		Sorted: sortBy == "priority",
	}
	tasks := query.FilterAndSort(a.tasks.All(), opts, a.cfg.Priorities, time.Now())

	return outputTaskList(tasks)
}

func outputTaskList(tasks []*task.Task) error {
	format := outputFormat()
	if format == output.FormatJSON {
		if tasks == nil {
			tasks = []*task.Task{}
		}
		return output.JSON(os.Stdout, tasks)
	}
	if format == output.FormatCompact {
		output.TaskCompact(os.Stdout, tasks)
		return nil
	}

	output.TaskTable(os.Stdout, tasks)
	return nil
}
