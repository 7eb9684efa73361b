package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// applyColorProfilePreference sets the lipgloss colour profile for the TUI.
// Only NO_COLOR is honoured; CLICOLOR is meant for plain command output.
func applyColorProfilePreference() {
	lipgloss.SetColorProfile(colorProfile(os.Getenv, termenv.ColorProfile()))
}

// colorProfile upgrades the detected profile when TERM or COLORTERM
// advertise more than detection found.
func colorProfile(getenv func(string) string, detected termenv.Profile) termenv.Profile {
	if strings.TrimSpace(getenv("NO_COLOR")) != "" {
		return termenv.Ascii
	}

	term := strings.ToLower(strings.TrimSpace(getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(getenv("COLORTERM")))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if detected != termenv.Ascii {
			return termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if detected == termenv.Ascii || detected == termenv.ANSI {
			return termenv.ANSI256
		}
	}
	return detected
}
