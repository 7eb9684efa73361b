package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/rlr-github/rory-themes/internal/catalog"
	"github.com/rlr-github/rory-themes/internal/install"
	"github.com/rlr-github/rory-themes/internal/osutil"
	"github.com/rlr-github/rory-themes/internal/preview"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	cardWidth       = 60
	cardPreviewRows = 8
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <theme>",
	Short: "Describe a theme",
	Long: `Show a theme's description, colours and a sample of its matrix rain.

Examples:
  rory-themes show hacker
  rory-themes show halloween`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeThemeIDs,
	Run: func(cmd *cobra.Command, args []string) {
		showTheme(args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showTheme(id string) {
	services, ok := loadServices()
	if !ok {
		return
	}

	theme, err := services.Catalog.Get(id)
	if err != nil {
		reportUnknownTheme(id, services.Catalog)
		return
	}

	scriptStatus := "no installation found"
	if dir, err := services.Applier.InstallDir(); err == nil {
		scriptStatus = "missing"
		if osutil.Exists(install.MatrixScript(dir, id)) {
			scriptStatus = "available"
		}
	}

	md := themeCard(theme, theme.ID == services.Applier.CurrentTheme(), scriptStatus)
	_, _ = fmt.Fprintln(deps.Stdout, renderCard(md))
}

// themeCard builds the markdown description of theme.
func themeCard(theme catalog.ThemeDescriptor, current bool, scriptStatus string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", theme.Label())
	fmt.Fprintf(&b, "%s\n\n", theme.Description)
	if current {
		b.WriteString("**Current theme**\n\n")
	}

	b.WriteString("| Colour | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Primary | `%s` |\n", theme.Colors.Primary)
	fmt.Fprintf(&b, "| Secondary | `%s` |\n", theme.Colors.Secondary)
	fmt.Fprintf(&b, "| Background | `%s` |\n\n", theme.Colors.Background)

	fmt.Fprintf(&b, "Matrix script: %s\n\n", scriptStatus)

	b.WriteString("## Preview\n\n```\n")
	grid := preview.Render(theme, cardWidth-10, cardPreviewRows)
	for _, line := range grid.Lines() {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
	b.WriteString("```\n")
	return b.String()
}

// renderCard renders md for deps.Stdout, falling back to the raw markdown.
func renderCard(md string) string {
	style := "dark"
	width := cardWidth
	if f, ok := deps.Stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && w < width {
			width = w
		}
	} else {
		style = "notty"
	}
	if termenv.EnvNoColor() {
		style = "notty"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// completeThemeIDs completes theme ids for commands taking one theme.
func completeThemeIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, t := range catalog.Default().List() {
		if strings.HasPrefix(t.ID, toComplete) {
			out = append(out, t.ID+"\t"+t.Name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
