package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/studyflowhq/studyflow/internal/clierr"
	"github.com/studyflowhq/studyflow/internal/export"
	"github.com/studyflowhq/studyflow/internal/output"
	"github.com/studyflowhq/studyflow/internal/store"
)

const reportFileMode = 0o600

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"export"},
	Short:   "Export a study report",
	Long: `Builds a human-readable report from the full task and session
snapshot: summary figures, the task list, subject breakdown, and the
last seven days of activity.

By default the report renders to the terminal. Use --out to write it
to a file, --format to choose markdown or plain text.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringP("out", "o", "", "write the report to a file instead of stdout")
	reportCmd.Flags().String("format", "markdown", "report format (markdown, text)")
	reportCmd.Flags().Bool("raw", false, "print raw markdown without terminal rendering")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	raw, _ := cmd.Flags().GetBool("raw")

	snapshot := export.Snapshot{
		Tasks:    a.tasks.All(),
		Sessions: a.sessions.All(),
		Subjects: a.cfg.Subjects,
		Now:      time.Now(),
	}

	var report string
	switch format {
	case "markdown", "md":
		report = export.Markdown(snapshot)
	case "text", "txt":
		report = export.Text(snapshot)
	default:
		return clierr.Newf(clierr.InvalidInput, "invalid --format %q (markdown, text)", format)
	}

	if out != "" {
		if err := os.WriteFile(out, []byte(report), reportFileMode); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		output.Messagef(os.Stdout, "Wrote report to %s", out)
		return nil
	}

	if raw || format == "text" || format == "txt" {
		fmt.Fprint(os.Stdout, report)
		return nil
	}

	// Render markdown for the terminal.
	style := glamour.WithStandardStyle("dark")
	if a.settings.Theme() == store.ThemeLight {
		style = glamour.WithStandardStyle("light")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100)) //nolint:mnd // report wrap width
	if err != nil {
		// Fall back to raw markdown if the renderer cannot start.
		fmt.Fprint(os.Stdout, report)
		return nil
	}

	rendered, err := renderer.Render(report)
	if err != nil {
		fmt.Fprint(os.Stdout, report)
		return nil
	}
	fmt.Fprint(os.Stdout, rendered)
	return nil
}
