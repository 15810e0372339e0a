package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/studyflowhq/studyflow/internal/clierr"
	"github.com/studyflowhq/studyflow/internal/output"
)

var deleteCmd = &cobra.Command{
	Use:     "delete ID[,ID,...]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Deletes the given task(s). Prompts for confirmation in interactive mode.
Deleting an id that no longer exists is a silent no-op.
Multiple IDs can be provided as a comma-separated list (requires --yes).`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")

	// Batch mode requires --yes.
	if len(ids) > 1 && !yes {
		return clierr.New(clierr.ConfirmationReq, "batch delete requires --yes")
	}

	if len(ids) > 1 {
		return runBatch(ids, func(id int) error {
			if err := a.tasks.Delete(id); err != nil {
				return err
			}
			logActivity(a.cfg, "delete", id, "")
			return nil
		})
	}

	id := ids[0]
	t := a.tasks.Get(id)

	if !yes && t != nil && !confirmPrompt(fmt.Sprintf("Delete task #%d (%s)?", t.ID, t.Text)) {
		output.Messagef(os.Stdout, "Canceled")
		return nil
	}

	if err := a.tasks.Delete(id); err != nil {
		return err
	}
	logActivity(a.cfg, "delete", id, "")

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]any{"deleted": id})
	}

	output.Messagef(os.Stdout, "Deleted task #%d", id)
	return nil
}

// confirmPrompt asks a yes/no question on the terminal. Non-interactive
// input (pipes, scripts) declines, so destructive commands then require
// an explicit --yes.
func confirmPrompt(question string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}

	fmt.Fprintf(os.Stderr, "%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
