// Package tui provides the Terminal User Interface for the theme selector.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rlr-github/rory-themes/internal/config"
	"github.com/rlr-github/rory-themes/internal/service"
	"github.com/rlr-github/rory-themes/internal/settings"
	"github.com/rlr-github/rory-themes/internal/tui/ui"
	"github.com/rlr-github/rory-themes/internal/tui/views"
)

const (
	appTitle    = "Rory Terminal Themes"
	appSubtitle = "Select your cyberpunk terminal theme"
	statusReady = "Ready"

	// listPanelWidth is the outer width of the theme list panel.
	listPanelWidth = 50
	// sideBySideWidth is the narrowest content width that fits both panels
	// next to each other.
	sideBySideWidth = 90
)

// applyFinishedMsg carries the single outcome of an ApplyAsync call.
type applyFinishedMsg struct {
	outcome service.ApplyOutcome
}

// previewExitedMsg is sent when a launched preview process exits.
type previewExitedMsg struct {
	handle *service.PreviewHandle
}

// settingsOpenedMsg reports the result of opening the settings file.
type settingsOpenedMsg struct {
	path string
	err  error
}

// Model is the root TUI model
type Model struct {
	services *service.Services
	ctx      context.Context

	// UI state
	width    int
	height   int
	showHelp bool
	status   string
	dialog   *views.Dialog

	// Operations
	applying bool
	preview  *service.PreviewHandle

	// View models
	list    views.ThemeListModel
	pane    views.PreviewPane
	spinner spinner.Model

	// Tint and styles
	tints    *ui.TintProvider
	tintSeq  int
	tintSave *tintSaver
	styles   ui.Styles
	keys     ui.KeyMap
}

// tintSaver writes ui_tint choices in the order they were made. A save
// that reaches the lock after a newer one has been written is dropped.
type tintSaver struct {
	cfg *service.ConfigService

	mu   sync.Mutex
	last int
}

func (s *tintSaver) save(seq int, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.last {
		return nil
	}
	s.last = seq
	return s.cfg.Modify(func(cfg *config.Config) { cfg.UITint = id })
}

// New creates a new TUI model
func New(services *service.Services) Model {
	return newModel(context.Background(), services)
}

func newModel(ctx context.Context, services *service.Services) Model {
	tints := ui.NewTintProvider(services.Config.Get().UITint)
	styles := tints.Styles()
	keys := ui.DefaultKeyMap()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styles.Spinner

	return Model{
		services: services,
		ctx:      ctx,
		status:   statusReady,
		list:     views.NewThemeListModel(services.Catalog, services.Applier.CurrentTheme(), styles, keys),
		spinner:  sp,
		tints:    tints,
		tintSave: &tintSaver{cfg: services.Config},
		styles:   styles,
		keys:     keys,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(appTitle)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if !m.applying {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case applyFinishedMsg:
		return m.handleApplyFinished(msg.outcome), nil

	case previewExitedMsg:
		if msg.handle == m.preview {
			m.preview = nil
			m.status = statusReady
		}
		return m, nil

	case settingsOpenedMsg:
		switch {
		case msg.err == nil:
			m.status = "Opened " + msg.path
		case errors.Is(msg.err, settings.ErrNoSettingsFile):
			m.dialog = views.NewInfoDialog("Settings", "No configuration file found.\n"+settings.NoFileHint)
		default:
			m.services.Logger.Warn("could not open settings", "path", msg.path, "err", msg.err)
			m.dialog = views.NewInfoDialog("Settings", "Configuration file:\n"+msg.path)
		}
		return m, nil

	case ui.TintSavedMsg:
		if msg.Err != nil {
			m.services.Logger.Warn("could not save ui_tint", "tint", msg.TintID, "err", msg.Err)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.dialog != nil {
		if key.Matches(msg, m.keys.Back, m.keys.Apply, m.keys.Quit) {
			m.dialog = nil
		}
		return m, nil
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help, m.keys.Back):
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Apply):
		return m.startApply()

	case key.Matches(msg, m.keys.Preview):
		return m.togglePreview()

	case key.Matches(msg, m.keys.Settings):
		return m, m.openSettings()

	case key.Matches(msg, m.keys.Reload):
		return m.reload(), nil

	case key.Matches(msg, m.keys.Tint):
		return m.cycleTint()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// reload re-reads the current-theme file and the selector config. A tint
// changed in the config file takes effect immediately.
func (m Model) reload() Model {
	if err := m.services.Config.Reload(); err != nil {
		m.services.Logger.Warn("could not reload config", "path", m.services.Config.GetPath(), "err", err)
	} else if id := m.services.Config.Get().UITint; id != m.tints.CurrentID() && m.tints.SetTint(id) {
		m = m.restyle()
	}

	current := m.services.Applier.ReloadCurrentTheme()
	m.list.SetCurrent(current)
	m.status = "Current theme: " + current
	return m
}

// startApply hands the selected theme to the Applier. The apply key is
// ignored while a result is pending, including one started elsewhere.
func (m Model) startApply() (tea.Model, tea.Cmd) {
	if m.applying {
		return m, nil
	}
	if m.services.Applier.Applying() {
		m.status = "Another theme is being applied"
		return m, nil
	}
	theme := m.list.Selected()
	ch := m.services.Applier.ApplyAsync(m.ctx, theme.ID)

	m.applying = true
	m.status = fmt.Sprintf("Applying %s theme...", theme.Name)
	return m, tea.Batch(m.spinner.Tick, waitForApply(ch))
}

func waitForApply(ch <-chan service.ApplyOutcome) tea.Cmd {
	return func() tea.Msg {
		return applyFinishedMsg{outcome: <-ch}
	}
}

func (m Model) handleApplyFinished(out service.ApplyOutcome) Model {
	m.applying = false
	if out.Err != nil {
		m.status = "Failed to apply theme"
		m.dialog = views.NewErrorDialog(service.Describe(out.Err))
		return m
	}

	name := out.Result.Name
	m.list.SetCurrent(out.Result.ThemeID)
	m.status = name + " theme applied!"
	m.dialog = views.NewSuccessDialog(name + " theme applied!\n\nOpen a new terminal to see the changes.")
	return m
}

func (m Model) previewRunning() bool {
	return m.preview != nil && m.services.Applier.Preview() == m.preview
}

func (m Model) togglePreview() (tea.Model, tea.Cmd) {
	if m.previewRunning() {
		m.services.Applier.StopPreview()
		m.preview = nil
		m.status = statusReady
		return m, nil
	}

	theme := m.list.Selected()
	h, err := m.services.Applier.StartPreview(theme.ID)
	if err != nil {
		m.preview = nil
		m.dialog = views.NewErrorDialog(service.DescribePreview(theme.ID, err))
		return m, nil
	}

	m.preview = h
	m.status = fmt.Sprintf("Running %s matrix animation...", theme.Name)
	return m, waitForPreviewExit(h)
}

func waitForPreviewExit(h *service.PreviewHandle) tea.Cmd {
	return func() tea.Msg {
		<-h.Done()
		return previewExitedMsg{handle: h}
	}
}

func (m Model) openSettings() tea.Cmd {
	opener := m.services.Settings
	return func() tea.Msg {
		return settingsOpenedMsg{path: opener.Path(), err: opener.Open()}
	}
}

// cycleTint switches the selector's own colours and persists the choice.
func (m Model) cycleTint() (tea.Model, tea.Cmd) {
	id := m.tints.NextTint()
	m = m.restyle()
	m.status = "Colours: " + m.tints.CurrentDisplayName()
	m.tintSeq++
	return m, saveTint(m.tintSave, m.tintSeq, id)
}

func (m Model) restyle() Model {
	m.styles = m.tints.Styles()
	m.spinner.Style = m.styles.Spinner
	m.list, _ = m.list.Update(ui.TintChangedMsg{TintID: m.tints.CurrentID(), Styles: m.styles})
	return m
}

func saveTint(s *tintSaver, seq int, id string) tea.Cmd {
	return func() tea.Msg {
		return ui.TintSavedMsg{TintID: id, Err: s.save(seq, id)}
	}
}

// layout sizes the list and preview panels for the current window.
func (m *Model) layout() {
	// App padding is two cells on each side; panels add a border and one
	// cell of padding on each side.
	const panelChrome = 4
	inner := m.width - 4

	// Header (3), blank + buttons (2), status (1), app padding (2),
	// panel border (2) and panel title (1).
	avail := m.height - 11

	listRows := 2*m.services.Catalog.Len() - 1

	if inner >= sideBySideWidth {
		m.list.SetWidth(listPanelWidth - panelChrome)
		m.pane.SetSize(inner-listPanelWidth-panelChrome, max(avail, listRows))
		return
	}
	m.list.SetWidth(inner - panelChrome)
	m.pane.SetSize(inner-panelChrome, max(avail-listRows-3, 0))
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.dialog != nil {
		return m.place(m.dialog.View(m.styles))
	}
	if m.showHelp {
		return m.place(views.RenderHelp(m.styles, m.keys))
	}

	header := m.styles.Title.Render(appTitle) + "\n" + m.styles.Subtitle.Render(appSubtitle)

	listPanel := m.renderPanel("Available Themes", m.list.View())
	paneW, _ := m.pane.Size()
	previewPanel := m.renderPanel("Preview", m.pane.View(m.list.Selected()))

	var body string
	if m.width-4 >= sideBySideWidth && paneW > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, listPanel, previewPanel)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		"",
		views.RenderButtons(m.styles, m.buttons()),
		m.renderStatusBar(),
	)
	return m.styles.App.Render(content)
}

func (m Model) buttons() []views.Button {
	previewLabel := "Preview Matrix"
	if m.previewRunning() {
		previewLabel = "Stop Matrix"
	}
	return []views.Button{
		{Key: "enter", Label: "Apply Theme", Disabled: m.applying},
		{Key: "p", Label: previewLabel},
		{Key: "s", Label: "Settings"},
		{Key: "q", Label: "Close"},
	}
}

func (m Model) renderPanel(title, body string) string {
	return m.styles.Panel.Render(m.styles.PanelTitle.Render(title) + "\n" + body)
}

func (m Model) renderStatusBar() string {
	status := m.status
	if m.applying {
		status = m.spinner.View() + " " + status
	}
	return views.RenderStatusBar(m.styles, m.width-4, status, "? help")
}

func (m Model) place(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Run starts the TUI application. Any running preview is stopped on exit.
func Run(services *service.Services) error {
	applyColorProfilePreference()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer services.Applier.Shutdown()

	p := tea.NewProgram(newModel(ctx, services), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
