// Package tui implements the interactive chart view.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/planline/planline/internal/i18n"
	"github.com/planline/planline/internal/logging"
	"github.com/planline/planline/internal/models"
	"github.com/planline/planline/internal/render"
	"github.com/planline/planline/internal/store"
	"github.com/planline/planline/internal/timeline"
)

const (
	minWindowWidth  = 60
	minWindowHeight = 12
	statusTTL       = 4 * time.Second
)

// Config controls TUI behavior.
type Config struct {
	Locale string
	Theme  string
}

// Run starts the interactive chart over the given database.
func Run(database *store.DB, cfg Config) error {
	model, err := newModel(database, cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type uiMode int

const (
	modeBrowse uiMode = iota
	modeSearch
	modeTag
	modeMove
)

type model struct {
	tasks    *store.TaskRepository
	legends  *store.LegendRepository
	prefs    *store.PrefRepository
	bundle   *i18n.Bundle
	ui       models.UIPreferences
	settings models.Settings

	canonical []*models.Task
	legend    []*models.LegendItem
	filter    timeline.Filter
	drag      timeline.Drag

	mode     uiMode
	cursor   int
	input    string
	status   string
	statusAt time.Time

	width  int
	height int
}

func newModel(database *store.DB, cfg Config) (*model, error) {
	ctx := context.Background()
	m := &model{
		tasks:   store.NewTaskRepository(database),
		legends: store.NewLegendRepository(database),
		prefs:   store.NewPrefRepository(database),
	}

	ui, err := m.prefs.UIPreferences(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.Locale != "" {
		ui.Lang = cfg.Locale
	}
	if cfg.Theme != "" {
		ui.Theme = cfg.Theme
	}
	m.ui = ui
	m.bundle = i18n.NewBundle(ui.Lang)

	settings, err := m.prefs.Settings(ctx)
	if err != nil {
		return nil, err
	}
	m.settings = settings

	if err := m.reload(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *model) reload(ctx context.Context) error {
	tasks, err := m.tasks.List(ctx)
	if err != nil {
		return err
	}
	legend, err := m.legends.List(ctx)
	if err != nil {
		return err
	}
	m.canonical = tasks
	m.legend = legend
	m.clampCursor()
	return nil
}

func (m *model) visible() []*models.Task {
	return timeline.Visible(m.canonical, m.filter)
}

func (m *model) clampCursor() {
	visible := m.visible()
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeSearch, modeTag:
			return m.updateInput(msg)
		case modeMove:
			return m.updateMove(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m *model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()

	switch msg.String() {
	case "q", "ctrl+c":
		m.savePrefs()
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "z":
		m.ui.Zoom = m.ui.Zoom.Next()
		m.savePrefs()
	case "t":
		m.ui.Theme = toggleTheme(m.ui.Theme)
		m.savePrefs()
	case "L":
		m.ui.Lang = nextLocale(m.ui.Lang)
		m.bundle = i18n.NewBundle(m.ui.Lang)
		m.savePrefs()
	case "/":
		m.mode = modeSearch
		m.input = m.filter.Search
	case "#":
		m.mode = modeTag
		m.input = m.filter.Tag
	case "m", " ":
		if len(visible) > 0 && m.cursor < len(visible) {
			if m.drag.Start(visible[m.cursor].ID, timeline.DragContextRow) {
				m.mode = modeMove
				m.setStatus("move: pick a target row, enter to drop, esc to cancel")
			}
		}
	case "esc":
		m.filter = timeline.Filter{}
		m.clampCursor()
	}
	return m, nil
}

func (m *model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.mode == modeSearch {
			m.filter.Search = m.input
		} else {
			m.filter.Tag = m.input
		}
		m.mode = modeBrowse
		m.input = ""
		m.clampCursor()
	case "esc":
		m.mode = modeBrowse
		m.input = ""
	case "backspace":
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.input += string(msg.Runes)
		}
	}
	return m, nil
}

func (m *model) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(visible) {
			target := visible[m.cursor].ID
			reordered := m.drag.Drop(m.canonical, visible, target)
			ctx := context.Background()
			if err := m.tasks.SaveOrder(ctx, reordered); err != nil {
				logging.Logger.Error().Err(err).Msg("failed to save order")
				m.setStatus("failed to save order")
			} else {
				m.canonical = reordered
				m.setStatus("order updated")
			}
		} else {
			m.drag.Cancel()
		}
		m.mode = modeBrowse
	case "esc", "q":
		m.drag.Cancel()
		m.mode = modeBrowse
		m.setStatus("move cancelled")
	}
	return m, nil
}

func (m *model) savePrefs() {
	ctx := context.Background()
	if err := m.prefs.SaveUIPreferences(ctx, m.ui); err != nil {
		logging.Logger.Warn().Err(err).Msg("failed to save preferences")
	}
}

func (m *model) setStatus(text string) {
	m.status = text
	m.statusAt = time.Now()
}

func toggleTheme(theme string) string {
	if theme == "dark" {
		return "light"
	}
	return "dark"
}

func nextLocale(current string) string {
	codes := i18n.Locales()
	for i, code := range codes {
		if code == current {
			return codes[(i+1)%len(codes)]
		}
	}
	return codes[0]
}

func (m *model) View() string {
	if m.width > 0 && (m.width < minWindowWidth || m.height < minWindowHeight) {
		return "Window too small.\n"
	}

	width := m.width
	if width <= 0 {
		width = 100
	}

	var b strings.Builder
	b.WriteString(m.headerLine(width))
	b.WriteString("\n\n")

	chart := render.Chart(m.canonical, m.settings, m.legend, render.Options{
		Zoom:   m.ui.Zoom,
		Filter: m.filter,
		Now:    time.Now(),
		Width:  width,
		Bundle: m.bundle,
		Theme:  m.ui.Theme,
	})
	b.WriteString(m.markSelection(chart))
	b.WriteString("\n")
	b.WriteString(m.footerLine(width))
	return b.String()
}

func (m *model) headerLine(width int) string {
	title := lipgloss.NewStyle().Bold(true).Render("planline")
	zoom := m.bundle.Label("zoom_" + string(m.ui.Zoom))
	parts := []string{title, zoom}
	if m.filter.Search != "" {
		parts = append(parts, "/"+m.filter.Search)
	}
	if m.filter.Tag != "" {
		parts = append(parts, "#"+m.filter.Tag)
	}
	return strings.Join(parts, "  ")
}

// markSelection prefixes the selected visible row with a cursor glyph. Chart
// rows start after the one-line header.
func (m *model) markSelection(chart string) string {
	lines := strings.Split(chart, "\n")
	row := 1 + m.cursor
	if len(m.visible()) > 0 && row < len(lines) {
		glyph := "❯ "
		if m.mode == modeMove {
			glyph = "⇅ "
		}
		lines[row] = glyph + lines[row]
		for i := range lines {
			if i != row {
				lines[i] = "  " + lines[i]
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m *model) footerLine(width int) string {
	if m.mode == modeSearch {
		return "/" + m.input + "▌"
	}
	if m.mode == modeTag {
		return "#" + m.input + "▌"
	}
	if m.status != "" && time.Since(m.statusAt) < statusTTL {
		return m.status
	}
	help := "j/k move · m reorder · z zoom · / search · # tag · t theme · L lang · q quit"
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	if len(help) > width {
		help = help[:width]
	}
	return style.Render(help)
}
