package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasques/internal/listmodel"
	"github.com/thenoetrevino/tasques/internal/tui/state"
)

func TestMouse_ReleaseInsideCheckboxToggles(t *testing.T) {
	m, db := SetupTestModelWithDB(t)
	box := listmodel.CheckRect(m.Layout().TaskCellRect(0, 2))

	m = send(m, release(box.X+1, box.Y, tea.MouseLeft))
	if got := finished(t, db, 1); got != 1 {
		t.Fatalf("Expected finished 1 after a click, got %d", got)
	}
	m = send(m, release(box.X, box.Y, tea.MouseLeft))
	if got := finished(t, db, 1); got != 0 {
		t.Errorf("Expected finished 0 after a second click, got %d", got)
	}
}

func TestMouse_IgnoredReleases(t *testing.T) {
	m, db := SetupTestModelWithDB(t)
	cell := m.Layout().TaskCellRect(0, 2)
	box := listmodel.CheckRect(cell)

	tests := []struct {
		name string
		msg  tea.MouseReleaseMsg
	}{
		{"secondary button", release(box.X, box.Y, tea.MouseRight)},
		{"middle button", release(box.X, box.Y, tea.MouseMiddle)},
		{"left of the checkbox", release(cell.X, cell.Y, tea.MouseLeft)},
		{"right of the checkbox", release(cell.X+cell.Width-1, cell.Y, tea.MouseLeft)},
		{"description cell", release(m.Layout().TaskCellRect(0, 0).X, cell.Y, tea.MouseLeft)},
		{"row without a task", release(box.X, box.Y+5, tea.MouseLeft)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m = send(m, tt.msg)
			if got := finished(t, db, 1); got != 0 {
				t.Errorf("Expected no change, got finished %d", got)
			}
		})
	}
}

func TestMouse_ReleaseIgnoredWhileModalOpen(t *testing.T) {
	m, db := SetupTestModelWithDB(t)
	box := listmodel.CheckRect(m.Layout().TaskCellRect(0, 2))

	m = press(m, "D")
	m = send(m, release(box.X, box.Y, tea.MouseLeft))
	if got := finished(t, db, 1); got != 0 {
		t.Errorf("Expected the dialog to swallow the click, got finished %d", got)
	}
	if m.UiState.Mode() != state.DeleteModuleConfirmMode {
		t.Errorf("Expected the dialog to stay open, got %v", m.UiState.Mode())
	}
}

func TestMouse_ClickSelectsModuleRow(t *testing.T) {
	m, _ := SetupTestModelWithDB(t)
	in := m.Layout().ModuleInner()

	// first line inside the pane is the header
	m = send(m, click(in.X+1, in.Y+1+2))
	if m.Lists.Selected() != 2 {
		t.Fatalf("Expected module 2 selected, got %d", m.Lists.Selected())
	}
	if m.UiState.Focus() != state.ModulePane {
		t.Error("Expected module pane focus")
	}
}

func TestMouse_ClickMovesTaskCursor(t *testing.T) {
	m, _ := SetupTestModelWithDB(t)
	cell := m.Layout().TaskCellRect(1, 1)

	m = send(m, click(cell.X, cell.Y))
	if m.UiState.SelectedTask() != 1 || m.UiState.SelectedColumn() != 1 {
		t.Errorf("Expected cursor at 1,1, got %d,%d", m.UiState.SelectedTask(), m.UiState.SelectedColumn())
	}
	if m.UiState.Focus() != state.TaskPane {
		t.Error("Expected task pane focus")
	}
}
