package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Header
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Panels
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	// Theme list
	ItemSelected lipgloss.Style
	ItemNormal   lipgloss.Style
	Radio        lipgloss.Style
	Description  lipgloss.Style
	Current      lipgloss.Style

	// Action buttons
	Button         lipgloss.Style
	ButtonKey      lipgloss.Style
	ButtonDisabled lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
	StatusHelp  lipgloss.Style
	Spinner     lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// palette is the set of semantic colours Styles are built from.
type palette struct {
	primary    lipgloss.TerminalColor
	secondary  lipgloss.TerminalColor
	accent     lipgloss.TerminalColor
	muted      lipgloss.TerminalColor
	success    lipgloss.TerminalColor
	warning    lipgloss.TerminalColor
	errorColor lipgloss.TerminalColor
	fg         lipgloss.TerminalColor
	bg         lipgloss.TerminalColor
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:    lipgloss.Color("99"),  // Purple
		secondary:  lipgloss.Color("39"),  // Cyan
		accent:     lipgloss.Color("212"), // Pink
		muted:      lipgloss.Color("240"), // Gray
		success:    lipgloss.Color("82"),  // Green
		warning:    lipgloss.Color("214"), // Orange
		errorColor: lipgloss.Color("196"), // Red
		fg:         lipgloss.Color("252"),
		bg:         lipgloss.Color("236"),
	})
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// This maps tint colors to semantic UI elements:
// - Primary: Purple (title, panel borders, selection)
// - Secondary: Cyan (keys)
// - Accent: BrightPurple (spinner, radio markers)
// - Muted: BrightBlack (descriptions, hints)
// - Success/Warning/Error: Green/Yellow/Red
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:    r.Purple(),
		secondary:  r.Cyan(),
		accent:     r.BrightPurple(),
		muted:      r.BrightBlack(),
		success:    r.Green(),
		warning:    r.Yellow(),
		errorColor: r.Red(),
		fg:         r.Fg(),
		bg:         r.Bg(),
	})
}

func newStyles(p palette) Styles {
	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),

		// Header
		Title: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.muted).
			MarginBottom(1),

		// Panels
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.muted).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),

		// Theme list
		ItemSelected: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),
		ItemNormal: lipgloss.NewStyle().
			Foreground(p.fg),
		Radio: lipgloss.NewStyle().
			Foreground(p.accent),
		Description: lipgloss.NewStyle().
			Foreground(p.muted),
		Current: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),

		// Action buttons
		Button: lipgloss.NewStyle().
			Foreground(p.fg).
			Padding(0, 1),
		ButtonKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().
			Foreground(p.fg),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),
		Spinner: lipgloss.NewStyle().
			Foreground(p.accent),

		// Help
		HelpKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true).
			Width(12),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.muted),

		// Dialog
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		// Errors and warnings
		Error: lipgloss.NewStyle().
			Foreground(p.errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.success),
	}
}
