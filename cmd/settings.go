package cmd

import (
	"errors"
	"fmt"

	"github.com/rlr-github/rory-themes/internal/settings"
	"github.com/spf13/cobra"
)

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Open the theme pack settings",
	Long: `Open config.json in the default application.

The file is written by the theme manager. When it does not exist yet there
is nothing to open.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		pathOnly, _ := cmd.Flags().GetBool("path")
		openSettings(pathOnly)
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.Flags().Bool("path", false, "Print the settings file path instead of opening it")
}

func openSettings(pathOnly bool) {
	services, ok := loadServices()
	if !ok {
		return
	}
	opener := services.Settings

	if pathOnly {
		_, _ = fmt.Fprintln(deps.Stdout, opener.Path())
		return
	}

	err := opener.Open()
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(deps.Stdout, "Opened %s\n", opener.Path())
	case errors.Is(err, settings.ErrNoSettingsFile):
		_, _ = fmt.Fprintln(deps.Stdout, "No configuration file found.")
		_, _ = fmt.Fprintln(deps.Stdout, settings.NoFileHint)
	default:
		services.Logger.Warn("could not open settings", "path", opener.Path(), "err", err)
		reportError("Could not open the settings file", err.Error(), "Edit it directly: "+opener.Path())
	}
}
