package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rlr-github/rory-themes/internal/catalog"
	"github.com/rlr-github/rory-themes/internal/tui/ui"
)

const (
	radioOn  = "◉"
	radioOff = "○"
)

// ThemeListModel is the radio list of catalog themes.
type ThemeListModel struct {
	themes  []catalog.ThemeDescriptor
	cursor  int
	current string
	styles  ui.Styles
	keys    ui.KeyMap
	width   int
}

// NewThemeListModel creates a list with the cursor on current.
func NewThemeListModel(cat *catalog.Catalog, current string, styles ui.Styles, keys ui.KeyMap) ThemeListModel {
	m := ThemeListModel{
		themes:  cat.List(),
		current: current,
		styles:  styles,
		keys:    keys,
	}
	if i := cat.IndexOf(current); i >= 0 {
		m.cursor = i
	}
	return m
}

// Update handles navigation keys.
func (m ThemeListModel) Update(msg tea.Msg) (ThemeListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.themes)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
		case key.Matches(msg, m.keys.Bottom):
			m.cursor = max(len(m.themes)-1, 0)
		}

	case ui.TintChangedMsg:
		m.styles = msg.Styles
	}
	return m, nil
}

// Selected returns the theme under the cursor.
func (m ThemeListModel) Selected() catalog.ThemeDescriptor {
	if len(m.themes) == 0 {
		return catalog.ThemeDescriptor{}
	}
	return m.themes[m.cursor]
}

// Cursor returns the selected index.
func (m ThemeListModel) Cursor() int {
	return m.cursor
}

// Current returns the id carrying the "(current)" marker.
func (m ThemeListModel) Current() string {
	return m.current
}

// SetCurrent moves the "(current)" marker without rebuilding the list.
func (m *ThemeListModel) SetCurrent(id string) {
	m.current = id
}

// SetWidth sets the width available to the list.
func (m *ThemeListModel) SetWidth(width int) {
	m.width = width
}

// View renders one line per theme with its description underneath.
func (m ThemeListModel) View() string {
	var b strings.Builder
	for i, t := range m.themes {
		radio := radioOff
		label := m.styles.ItemNormal.Render(t.Label())
		if i == m.cursor {
			radio = radioOn
			label = m.styles.ItemSelected.Render(t.Label())
		}
		b.WriteString(m.styles.Radio.Render(radio))
		b.WriteString(" ")
		b.WriteString(label)
		if t.ID == m.current {
			b.WriteString(" ")
			b.WriteString(m.styles.Current.Render("(current)"))
		}
		b.WriteString("\n")

		desc := "  - " + t.Description
		if m.width > 0 {
			desc = truncate(desc, m.width)
		}
		b.WriteString(m.styles.Description.Render(desc))
		if i < len(m.themes)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func truncate(s string, width int) string {
	if width <= 1 {
		return "…"
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
