package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rlr-github/rory-themes/internal/catalog"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Long: `List the available themes in display order.

The current theme is marked with ◉. Each theme shows a swatch of its
primary, secondary and background colours.

Examples:
  rory-themes list            Themes with descriptions
  rory-themes list --ids      One theme id per line`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		idsOnly, _ := cmd.Flags().GetBool("ids")
		listThemes(idsOnly)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("ids", false, "Print only theme ids")
}

func listThemes(idsOnly bool) {
	services, ok := loadServices()
	if !ok {
		return
	}

	if idsOnly {
		for _, id := range services.Catalog.IDs() {
			_, _ = fmt.Fprintln(deps.Stdout, id)
		}
		return
	}

	current := services.Applier.CurrentTheme()
	labelStyle := lipgloss.NewStyle().Width(14)
	_, _ = fmt.Fprintln(deps.Stdout, "Available themes:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for _, t := range services.Catalog.List() {
		marker := "○"
		suffix := ""
		if t.ID == current {
			marker = "◉"
			suffix = " (current)"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s %s %s %-10s%s\n", marker, swatch(t.Colors), labelStyle.Render(t.Label()), t.ID, suffix)
		_, _ = fmt.Fprintf(deps.Stdout, "    %s\n", t.Description)
	}
}

// swatch renders the theme colours as three coloured blocks.
func swatch(c catalog.Colors) string {
	block := func(color string) string {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Render("██")
	}
	return block(c.Primary) + block(c.Secondary) + block(c.Background)
}
