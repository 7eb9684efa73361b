package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/rlr-github/rory-themes/internal/tui/ui"
)

// Button is one entry of the action row.
type Button struct {
	Key      string
	Label    string
	Disabled bool
}

// RenderButtons renders the action row.
func RenderButtons(styles ui.Styles, buttons []Button) string {
	parts := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		if btn.Disabled {
			parts = append(parts, styles.ButtonDisabled.Render(fmt.Sprintf("[%s] %s", btn.Key, btn.Label)))
			continue
		}
		parts = append(parts, styles.Button.Render(
			styles.ButtonKey.Render("["+btn.Key+"]")+" "+btn.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderStatusBar renders status on the left and right on the right edge,
// filled to width.
func RenderStatusBar(styles ui.Styles, width int, status, right string) string {
	left := styles.StatusValue.Render(status)
	hint := styles.StatusHelp.Render(right)

	// StatusBar adds one cell of padding on each side.
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(hint)
	if gap < 1 {
		gap = 1
	}
	return styles.StatusBar.Render(left + strings.Repeat(" ", gap) + hint)
}

// RenderHelp renders the full key list for the help overlay.
func RenderHelp(styles ui.Styles, keys ui.KeyMap) string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for gi, group := range keys.FullHelp() {
		if gi > 0 {
			b.WriteString("\n")
		}
		for _, binding := range group {
			b.WriteString(renderHelpLine(styles, binding))
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.StatusHelp.Render("Press ? to close"))
	return styles.Dialog.Render(b.String())
}

func renderHelpLine(styles ui.Styles, binding key.Binding) string {
	h := binding.Help()
	return styles.HelpKey.Render(h.Key) + styles.HelpDesc.Render(h.Desc) + "\n"
}
