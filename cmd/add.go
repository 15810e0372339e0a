package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/studyflowhq/studyflow/internal/date"
	"github.com/studyflowhq/studyflow/internal/filelock"
	"github.com/studyflowhq/studyflow/internal/output"
	"github.com/studyflowhq/studyflow/internal/task"
)

var addCmd = &cobra.Command{
	Use:     "add TEXT",
	Aliases: []string{"create"},
	Short:   "Add a new task",
	Long: `Adds a task with optional due date, subject, and priority.

The subject defaults to "general" when omitted; priority defaults to medium.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().String("due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().String("subject", "", "subject (math, science, english, history, general)")
	addCmd.Flags().String("priority", "", "priority (high, medium, low; default medium)")
	addCmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		// The category/subject naming split exists in the wild; accept both.
		if name == "category" {
			name = "subject"
		}
		return pflag.NormalizedName(name)
	})
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	// Acquire an exclusive lock so concurrent adds cannot read the same
	// next_task_id and mint duplicate IDs.
	dir, err := resolveDir()
	if err != nil {
		return err
	}
	if _, err := loadConfig(); err != nil { // ensure the directory exists before locking inside it
		return err
	}
	unlock, err := filelock.Lock(filepath.Join(dir, ".lock"))
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer unlock() //nolint:errcheck // best-effort unlock on exit

	a, err := loadApp()
	if err != nil {
		return err
	}

	var due *date.Date
	if v, _ := cmd.Flags().GetString("due"); v != "" {
		d, err := date.Parse(v)
		if err != nil {
			return task.ValidateDate("due", v, err)
		}
		due = &d
	}

	subject, _ := cmd.Flags().GetString("subject")
	if subject != "" {
		if err := task.ValidateSubject(subject, a.cfg.Subjects); err != nil {
			return err
		}
	}
	priority, _ := cmd.Flags().GetString("priority")

	t, err := a.tasks.Create(args[0], due, subject, priority)
	if err != nil {
		return err
	}

	logActivity(a.cfg, "add", t.ID, t.Text)

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}

	output.Messagef(os.Stdout, "Added task #%d: %s", t.ID, t.Text)
	output.Messagef(os.Stdout, "  Subject: %s | Priority: %s", t.Subject, t.Priority)
	if t.Due != nil {
		output.Messagef(os.Stdout, "  Due: %s", t.Due.String())
	}
	return nil
}
