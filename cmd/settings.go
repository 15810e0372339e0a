package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/studyflowhq/studyflow/internal/clierr"
	"github.com/studyflowhq/studyflow/internal/output"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change preferences",
	Long: `Shows the current preferences. Use the theme and focus subcommands
to change them.`,
	RunE: runSettingsShow,
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme (light|dark)",
	Short: "Set the color theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTheme,
}

var settingsFocusCmd = &cobra.Command{
	Use:   "focus MINUTES",
	Short: "Set the focus timer duration",
	Long: `Sets the focus duration in minutes. The change applies to future
timer resets; a countdown already in progress keeps its remaining time.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsFocus,
}

func init() {
	settingsCmd.AddCommand(settingsThemeCmd)
	settingsCmd.AddCommand(settingsFocusCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	data := a.settings.Get()
	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, data)
	}

	output.Messagef(os.Stdout, "Theme: %s", data.Theme)
	output.Messagef(os.Stdout, "Focus duration: %d minutes", data.FocusMinutes)
	return nil
}

func runSettingsTheme(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	if err := a.settings.SetTheme(args[0]); err != nil {
		return err
	}
	logActivity(a.cfg, "settings", 0, "theme="+args[0])

	output.Messagef(os.Stdout, "Theme set to %s", args[0])
	return nil
}

func runSettingsFocus(_ *cobra.Command, args []string) error {
	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		return clierr.Newf(clierr.InvalidDuration, "invalid duration %q: expected minutes", args[0]).
			WithDetails(map[string]any{"input": args[0]})
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	if err := a.settings.SetFocusMinutes(minutes); err != nil {
		return err
	}
	logActivity(a.cfg, "settings", 0, "focus="+args[0])

	output.Messagef(os.Stdout, "Focus duration set to %d minutes", minutes)
	return nil
}
