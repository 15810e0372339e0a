package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/studyflowhq/studyflow/internal/output"
	"github.com/studyflowhq/studyflow/internal/session"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List today's focus sessions",
	Long: `Lists focus sessions completed today (calendar date, local time),
oldest first. Sessions linked to a task that has since been deleted
show the link as "(deleted task)".`,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().IntP("limit", "n", 0, "show only the most recent N of today's sessions")
	sessionsCmd.Flags().Bool("all", false, "show the full session history instead of today's")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	all, _ := cmd.Flags().GetBool("all")

	var sessions []*session.Session
	switch {
	case all:
		sessions = a.sessions.All()
	case limit > 0:
		sessions = a.sessions.RecentSessions(limit)
	default:
		sessions = a.sessions.TodaysSessions()
	}

	format := outputFormat()
	if format == output.FormatJSON {
		if sessions == nil {
			sessions = []*session.Session{}
		}
		return output.JSON(os.Stdout, sessions)
	}
	if format == output.FormatCompact {
		output.SessionCompact(os.Stdout, sessions)
		return nil
	}

	output.SessionTable(os.Stdout, sessions, func(id int) (string, bool) {
		if t := a.tasks.Get(id); t != nil {
			return t.Text, true
		}
		return "", false
	})
	return nil
}
