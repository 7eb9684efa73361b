package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rlr-github/rory-themes/internal/catalog"
	"github.com/rlr-github/rory-themes/internal/preview"
)

// PreviewPane shows the static matrix sample for one theme.
type PreviewPane struct {
	width  int
	height int
}

// SetSize sets the inner size of the pane in cells.
func (p *PreviewPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Size returns the inner size of the pane.
func (p PreviewPane) Size() (int, int) {
	return p.width, p.height
}

// View paints theme's grid on its background colour.
func (p PreviewPane) View(theme catalog.ThemeDescriptor) string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}
	g := preview.Render(theme, p.width, p.height)
	return lipgloss.NewStyle().
		Width(p.width).
		MaxHeight(p.height).
		Render(g.Paint())
}
