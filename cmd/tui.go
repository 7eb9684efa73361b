package cmd

import (
	"github.com/spf13/cobra"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive theme selector",
	Long: `Launch the interactive theme selector. This is also what runs when
rory-themes is started without a command.

Keyboard shortcuts:
  - j/k or arrows: Move through the themes
  - enter: Apply the selected theme
  - p: Start or stop the matrix animation
  - s: Open settings
  - t: Cycle the selector's colours
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes and runs the TUI application
func runTUI() {
	services, ok := loadServices()
	if !ok {
		return
	}

	if err := deps.RunTUI(services); err != nil {
		services.Logger.Error("tui exited with error", "err", err)
		reportError("Failed to run the theme selector", err.Error(), "")
	}
}
