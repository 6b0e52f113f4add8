package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasques/internal/listmodel"
	"github.com/thenoetrevino/tasques/internal/tui/components"
	"github.com/thenoetrevino/tasques/internal/tui/state"
)

// handleEditCellStart opens the editor the column asks for: a text input
// for text, the date picker for dates. Check cells have no editor.
func (m Model) handleEditCellStart() (tea.Model, tea.Cmd) {
	row, col := m.UiState.SelectedTask(), m.UiState.SelectedColumn()
	value, ok := m.Lists.Tasks.Value(row, col)
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No task to edit")
		return m, nil
	}

	switch m.Lists.Tasks.EditorKind(col) {
	case listmodel.EditorText:
		m.EditState.StartText(row, col, value.Text)
	case listmodel.EditorDate:
		date := value.Date
		if !value.Valid {
			date = m.now()
		}
		m.EditState.StartDate(row, col, components.NewDatePicker(date))
	default:
		m.NotificationState.Add(state.LevelInfo, "Press space to toggle")
		return m, nil
	}

	m.UiState.SetMode(state.EditCellMode)
	return m, nil
}

// handleEditCell feeds keys to the open cell editor. enter commits the
// value as one write; esc leaves the cell untouched.
func (m Model) handleEditCell(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	es := m.EditState

	switch es.Kind {
	case listmodel.EditorDate:
		picker, action := es.Picker.HandleKey(msg.String())
		es.Picker = picker
		switch action {
		case components.DatePickerCommit:
			return m.commitCell(listmodel.DateValue(picker.Value()))
		case components.DatePickerCancel:
			return m.closeEditor()
		}
		return m, nil

	case listmodel.EditorText:
		switch msg.String() {
		case "enter":
			return m.commitCell(listmodel.TextValue(es.Input.Value()))
		case "esc":
			return m.closeEditor()
		}
		var cmd tea.Cmd
		es.Input, cmd = es.Input.Update(msg)
		return m, cmd
	}

	return m.closeEditor()
}

func (m Model) commitCell(value listmodel.CellValue) (tea.Model, tea.Cmd) {
	row, col := m.EditState.Row, m.EditState.Column
	m.closeEditor()

	ctx, cancel := m.DbContext()
	defer cancel()
	if err := m.Lists.Tasks.Commit(ctx, row, col, value); err != nil {
		m.reportError("updating task", err)
		return m, nil
	}
	m.afterTasksChanged()
	return m, nil
}

func (m Model) closeEditor() (tea.Model, tea.Cmd) {
	m.EditState.Stop()
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}

// handleRenameModuleStart opens an inline editor on the selected module.
func (m Model) handleRenameModuleStart() (tea.Model, tea.Cmd) {
	module := m.currentModule()
	if module == nil {
		m.NotificationState.Add(state.LevelInfo, "No module to rename")
		return m, nil
	}
	m.EditState.StartText(m.Lists.Selected(), -1, module.Name)
	m.UiState.SetFocus(state.ModulePane)
	m.UiState.SetMode(state.RenameModuleMode)
	return m, nil
}

// handleRenameModule writes the new name on enter; a duplicate name is
// rejected by the store and reported.
func (m Model) handleRenameModule(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeEditor()
	case "enter":
		name := m.EditState.Input.Value()
		m.closeEditor()

		ctx, cancel := m.DbContext()
		defer cancel()
		if err := m.Lists.RenameSelectedModule(ctx, name); err != nil {
			m.reportError("renaming module", err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.EditState.Input, cmd = m.EditState.Input.Update(msg)
	return m, cmd
}
