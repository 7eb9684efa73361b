package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// currentCmd represents the current command
var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the current theme",
	Long: `Print the id of the theme last applied by the theme manager.

Falls back to default_theme from the config file when no theme has been
applied yet or the recorded theme is unknown.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		long, _ := cmd.Flags().GetBool("long")
		showCurrent(long)
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
	currentCmd.Flags().BoolP("long", "l", false, "Print the icon and display name too")
}

func showCurrent(long bool) {
	services, ok := loadServices()
	if !ok {
		return
	}

	id := services.Applier.CurrentTheme()
	if !long {
		_, _ = fmt.Fprintln(deps.Stdout, id)
		return
	}
	theme, _ := services.Catalog.Get(id)
	_, _ = fmt.Fprintf(deps.Stdout, "%s (%s)\n", theme.Label(), id)
}
