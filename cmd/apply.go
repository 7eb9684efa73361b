package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply <theme>",
	Short: "Apply a theme",
	Long: `Apply a theme by running the Rory Terminal theme manager.

The change takes effect in newly opened terminals.

Examples:
  rory-themes apply matrix
  rory-themes apply halloween`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeThemeIDs,
	Run: func(cmd *cobra.Command, args []string) {
		applyTheme(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func applyTheme(cmd *cobra.Command, id string) {
	services, ok := loadServices()
	if !ok {
		return
	}

	theme, err := services.Catalog.Get(id)
	if err != nil {
		reportUnknownTheme(id, services.Catalog)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Applying %s theme...\n", theme.Name)
	result, err := services.Applier.Apply(cmd.Context(), id)
	if err != nil {
		reportApplyError(err, services.Catalog, id)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "✓ %s theme applied!\n", result.Name)
	_, _ = fmt.Fprintln(deps.Stdout, "Open a new terminal to see the changes.")
}
