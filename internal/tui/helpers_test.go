package tui

import (
	"context"
	"database/sql"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasques/internal/app"
	"github.com/thenoetrevino/tasques/internal/config"
	"github.com/thenoetrevino/tasques/internal/logging"
	"github.com/thenoetrevino/tasques/internal/testutil"
)

// SetupTestModelWithDB returns a sized model over the seeded store.
func SetupTestModelWithDB(t *testing.T) (Model, *sql.DB) {
	t.Helper()
	return setupModel(t, testutil.SetupTestDB(t))
}

// SetupEmptyTestModel returns a sized model over a store with no modules.
func SetupEmptyTestModel(t *testing.T) (Model, *sql.DB) {
	t.Helper()
	return setupModel(t, testutil.SetupEmptyTestDB(t))
}

func setupModel(t *testing.T, db *sql.DB) (Model, *sql.DB) {
	t.Helper()
	logging.Discard()

	m := InitialModel(context.Background(), app.New(db), config.Default())
	m.now = func() time.Time { return time.Date(2024, time.March, 4, 10, 0, 0, 0, time.Local) }
	return send(m, tea.WindowSizeMsg{Width: 100, Height: 30}), db
}

func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// keyPress builds the message a terminal sends for key, using the names
// tea.Key.String reports.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(key)[0]
	return tea.KeyPressMsg{Code: r, Text: key}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m = send(m, keyPress(k))
	}
	return m
}

func release(x, y int, button tea.MouseButton) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: button}
}

func click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func finished(t *testing.T, db *sql.DB, taskID int) int {
	t.Helper()
	return testutil.CountRows(t, db, "SELECT finished FROM task WHERE id = ?", taskID)
}
