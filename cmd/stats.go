package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyflowhq/studyflow/internal/output"
	"github.com/studyflowhq/studyflow/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	Long: `Shows completion progress, the activity streak, per-subject
completion counts, and the last seven days of focus activity.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	overview := buildOverview(a, time.Now())

	format := outputFormat()
	if format == output.FormatJSON {
		return output.JSON(os.Stdout, overview)
	}
	if format == output.FormatCompact {
		output.OverviewCompact(os.Stdout, overview)
		return nil
	}

	output.OverviewTable(os.Stdout, overview)
	return nil
}

// buildOverview assembles the aggregate statistics view from the
// store snapshots.
func buildOverview(a *app, now time.Time) output.Overview {
	tasks := a.tasks.All()
	sessions := a.sessions.All()

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	percent := stats.ProgressPercent(tasks)
	return output.Overview{
		TotalTasks: len(tasks),
		Completed:  completed,
		Percent:    percent,
		Tier:       stats.MotivationTier(percent, len(tasks) > 0),
		Streak:     stats.Streak(tasks, sessions, now),
		Subjects:   stats.SubjectBreakdown(tasks, a.cfg.Subjects),
		Week:       stats.WeeklySeries(tasks, sessions, now),
	}
}
