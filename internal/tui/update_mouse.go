package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasques/internal/listmodel"
	"github.com/thenoetrevino/tasques/internal/tui/state"
)

func toButton(b tea.MouseButton) listmodel.MouseButton {
	switch b {
	case tea.MouseLeft:
		return listmodel.ButtonPrimary
	case tea.MouseRight:
		return listmodel.ButtonSecondary
	case tea.MouseMiddle:
		return listmodel.ButtonMiddle
	default:
		return listmodel.ButtonNone
	}
}

// visibleCellRect is the screen rectangle of a task cell, given its row in
// the whole list.
func (m Model) visibleCellRect(row, col int) listmodel.Rect {
	return m.Layout().TaskCellRect(row-m.UiState.TaskScrollOffset(), col)
}

// handleMouseClick selects what was pressed: a module row or a task cell.
// Toggling waits for the release.
func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}
	layout := m.Layout()

	if row, ok := layout.ModuleRowAt(mouse.X, mouse.Y); ok {
		m.UiState.SetFocus(state.ModulePane)
		return m.selectModule(m.UiState.ModuleScrollOffset() + row)
	}

	if row, col, ok := layout.TaskCellAt(mouse.X, mouse.Y); ok {
		row += m.UiState.TaskScrollOffset()
		if row < m.Lists.Tasks.Len() {
			m.UiState.SetFocus(state.TaskPane)
			m.UiState.SetSelectedTask(row)
			m.UiState.SetSelectedColumn(col)
		}
	}
	return m, nil
}

// handleMouseRelease lets the cell under the pointer react. Only a primary
// release inside a checkbox changes anything.
func (m Model) handleMouseRelease(msg tea.MouseReleaseMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	visibleRow, col, ok := m.Layout().TaskCellAt(mouse.X, mouse.Y)
	if !ok {
		return m, nil
	}
	row := m.UiState.TaskScrollOffset() + visibleRow

	ev := listmodel.Event{
		Type:   listmodel.EventMouseRelease,
		Button: toButton(mouse.Button),
		X:      mouse.X,
		Y:      mouse.Y,
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	if _, err := m.Lists.Tasks.HandleEvent(ctx, row, col, ev, m.visibleCellRect(row, col)); err != nil {
		m.reportError("toggling task", err)
	}
	return m, nil
}
