package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/planline/planline/internal/models"
	"github.com/planline/planline/internal/store"
)

func testModel(t *testing.T, names ...string) *model {
	t.Helper()
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))

	repo := store.NewTaskRepository(db)
	for _, name := range names {
		task := models.NewTask(name, "2025-03-01", "2025-03-10", "", 0, nil)
		require.NoError(t, repo.Create(context.Background(), task))
	}

	m, err := newModel(db, Config{})
	require.NoError(t, err)
	m.width = 120
	m.height = 40
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(m *model, keys ...string) {
	for _, k := range keys {
		m.Update(key(k))
	}
}

func names(tasks []*models.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Name
	}
	return out
}

func TestCursorMovement(t *testing.T) {
	m := testModel(t, "alpha", "beta", "gamma")

	require.Equal(t, 0, m.cursor)
	send(m, "down", "down")
	require.Equal(t, 2, m.cursor)
	send(m, "down")
	require.Equal(t, 2, m.cursor, "cursor stops at the last row")
	send(m, "up", "up", "up")
	require.Equal(t, 0, m.cursor)
}

func TestZoomCycling(t *testing.T) {
	m := testModel(t, "alpha")

	require.Equal(t, models.ZoomDay, m.ui.Zoom)
	send(m, "z")
	require.Equal(t, models.ZoomWeek, m.ui.Zoom)
	send(m, "z", "z", "z")
	require.Equal(t, models.ZoomDay, m.ui.Zoom, "zoom wraps around")

	stored, err := m.prefs.UIPreferences(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.ZoomDay, stored.Zoom, "zoom persists")
}

func TestSearchFilter(t *testing.T) {
	m := testModel(t, "design", "build", "deploy")

	send(m, "/", "d", "e", "s", "enter")
	require.Equal(t, modeBrowse, m.mode)
	require.Equal(t, "des", m.filter.Search)
	require.Equal(t, []string{"design"}, names(m.visible()))

	send(m, "esc")
	require.True(t, m.filter.IsEmpty())
	require.Len(t, m.visible(), 3)
}

func TestSearchInputEscape(t *testing.T) {
	m := testModel(t, "alpha")

	send(m, "/", "x", "esc")
	require.Equal(t, modeBrowse, m.mode)
	require.Empty(t, m.filter.Search, "escape discards the pending input")
}

func TestMoveReordersAndPersists(t *testing.T) {
	m := testModel(t, "alpha", "beta", "gamma")

	// Pick gamma and drop it on alpha.
	send(m, "down", "down", "m")
	require.Equal(t, modeMove, m.mode)
	require.True(t, m.drag.Active())

	send(m, "up", "up", "enter")
	require.Equal(t, modeBrowse, m.mode)
	require.False(t, m.drag.Active())
	require.Equal(t, []string{"gamma", "alpha", "beta"}, names(m.canonical))

	stored, err := m.tasks.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"gamma", "alpha", "beta"}, names(stored))
}

func TestMoveCancelRestoresOrder(t *testing.T) {
	m := testModel(t, "alpha", "beta")

	send(m, "m", "down", "esc")
	require.Equal(t, modeBrowse, m.mode)
	require.False(t, m.drag.Active())
	require.Equal(t, []string{"alpha", "beta"}, names(m.canonical))
}

func TestMoveIgnoredWithoutTasks(t *testing.T) {
	m := testModel(t)

	send(m, "m")
	require.Equal(t, modeBrowse, m.mode)
	require.False(t, m.drag.Active())
}

func TestThemeAndLocaleToggle(t *testing.T) {
	m := testModel(t, "alpha")

	require.Equal(t, "light", m.ui.Theme)
	send(m, "t")
	require.Equal(t, "dark", m.ui.Theme)

	require.Equal(t, "en", m.ui.Lang)
	send(m, "L")
	require.Equal(t, "sk", m.ui.Lang)
	require.Equal(t, "Dnes", m.bundle.Label("today"))
}

func TestViewRendersChart(t *testing.T) {
	m := testModel(t, "alpha")

	out := m.View()
	require.Contains(t, out, "planline")
	require.Contains(t, out, "alpha")
}
