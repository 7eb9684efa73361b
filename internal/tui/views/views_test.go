package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rlr-github/rory-themes/internal/catalog"
	"github.com/rlr-github/rory-themes/internal/tui/ui"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestList(current string) ThemeListModel {
	return NewThemeListModel(catalog.Default(), current, ui.DefaultStyles(), ui.DefaultKeyMap())
}

func TestNewThemeListModel_CursorOnCurrent(t *testing.T) {
	tests := []struct {
		current  string
		expected int
	}{
		{"halloween", 0},
		{"easter", 2},
		{"matrix", 4},
		{"unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			m := newTestList(tt.current)
			if m.Cursor() != tt.expected {
				t.Errorf("Cursor() = %d, expected %d", m.Cursor(), tt.expected)
			}
		})
	}
}

func TestThemeListModel_Navigation(t *testing.T) {
	m := newTestList("hacker")

	steps := []struct {
		msg      tea.KeyMsg
		expected string
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, "matrix"},
		{tea.KeyMsg{Type: tea.KeyDown}, "matrix"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, "hacker"},
		{tea.KeyMsg{Type: tea.KeyHome}, "halloween"},
		{tea.KeyMsg{Type: tea.KeyUp}, "halloween"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")}, "matrix"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")}, "halloween"},
	}
	for i, s := range steps {
		m, _ = m.Update(s.msg)
		if got := m.Selected().ID; got != s.expected {
			t.Fatalf("step %d: selected %q, expected %q", i, got, s.expected)
		}
	}
}

func TestThemeListModel_View(t *testing.T) {
	m := newTestList("easter")
	view := m.View()

	lines := strings.Split(view, "\n")
	if len(lines) != 2*catalog.Default().Len() {
		t.Fatalf("expected %d lines, got %d", 2*catalog.Default().Len(), len(lines))
	}
	if !strings.HasPrefix(lines[4], radioOn) {
		t.Errorf("selected line = %q, expected %s marker", lines[4], radioOn)
	}
	if !strings.Contains(lines[4], "🐰 Easter") || !strings.Contains(lines[4], "(current)") {
		t.Errorf("selected line = %q", lines[4])
	}
	if !strings.HasPrefix(lines[0], radioOff) {
		t.Errorf("unselected line = %q, expected %s marker", lines[0], radioOff)
	}
	if strings.Count(view, "(current)") != 1 {
		t.Error("expected exactly one current marker")
	}
	if !strings.Contains(lines[5], "  - Pastel rainbow colors for spring") {
		t.Errorf("description line = %q", lines[5])
	}
}

func TestThemeListModel_SetCurrent(t *testing.T) {
	m := newTestList("hacker")
	m.SetCurrent("christmas")

	if m.Current() != "christmas" {
		t.Errorf("Current() = %q", m.Current())
	}
	if m.Selected().ID != "hacker" {
		t.Error("SetCurrent should not move the cursor")
	}
	lines := strings.Split(m.View(), "\n")
	if !strings.Contains(lines[2], "(current)") {
		t.Errorf("christmas line = %q, expected current marker", lines[2])
	}
}

func TestThemeListModel_TruncatesDescriptions(t *testing.T) {
	m := newTestList("hacker")
	m.SetWidth(20)

	for _, line := range strings.Split(m.View(), "\n") {
		if !strings.HasPrefix(line, "  - ") {
			continue
		}
		if w := len([]rune(line)); w > 20 {
			t.Errorf("description %q is %d runes wide", line, w)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		width    int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trun…"},
		{"x", 1, "…"},
		{"x", 0, "…"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.in, tt.width, got, tt.expected)
		}
	}
}

func TestDialogs(t *testing.T) {
	styles := ui.DefaultStyles()

	tests := []struct {
		name   string
		dialog *Dialog
		kind   DialogKind
		title  string
	}{
		{"error", NewErrorDialog("boom"), DialogError, "Error"},
		{"success", NewSuccessDialog("done"), DialogSuccess, "Success"},
		{"info", NewInfoDialog("Settings", "path"), DialogInfo, "Settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.dialog.Kind != tt.kind || tt.dialog.Title != tt.title {
				t.Errorf("got %+v", tt.dialog)
			}
			view := tt.dialog.View(styles)
			if !strings.Contains(view, tt.title) || !strings.Contains(view, tt.dialog.Body) {
				t.Errorf("view missing title or body:\n%s", view)
			}
			if !strings.Contains(view, "enter/esc to close") {
				t.Error("view missing close hint")
			}
		})
	}
}

func TestRenderButtons(t *testing.T) {
	out := RenderButtons(ui.DefaultStyles(), []Button{
		{Key: "enter", Label: "Apply Theme", Disabled: true},
		{Key: "p", Label: "Preview Matrix"},
	})

	for _, want := range []string{"[enter] Apply Theme", "[p] Preview Matrix"} {
		if !strings.Contains(out, want) {
			t.Errorf("buttons missing %q: %q", want, out)
		}
	}
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(ui.DefaultStyles(), 60, "Ready", "? help")

	if !strings.Contains(out, "Ready") || !strings.Contains(out, "? help") {
		t.Errorf("status bar = %q", out)
	}
	if strings.Index(out, "Ready") > strings.Index(out, "? help") {
		t.Error("status should be left of the hint")
	}
}

func TestRenderHelp(t *testing.T) {
	out := RenderHelp(ui.DefaultStyles(), ui.DefaultKeyMap())

	for _, want := range []string{"Keyboard Shortcuts", "apply", "preview", "quit", "Press ? to close"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestPreviewPane(t *testing.T) {
	var p PreviewPane
	hacker, _ := catalog.Default().Get("hacker")

	if p.View(hacker) != "" {
		t.Error("unsized pane should render nothing")
	}

	p.SetSize(30, 6)
	if w, h := p.Size(); w != 30 || h != 6 {
		t.Errorf("Size() = %d, %d", w, h)
	}

	view := p.View(hacker)
	if !strings.Contains(view, "💻 Hacker Theme") {
		t.Errorf("pane missing title:\n%s", view)
	}
	if n := len(strings.Split(view, "\n")); n > 6 {
		t.Errorf("pane has %d rows, expected at most 6", n)
	}
}
