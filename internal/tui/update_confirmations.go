package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasques/internal/tui/state"
)

// handleDeleteModuleConfirm handles module deletion confirmation.
func (m Model) handleDeleteModuleConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDeleteModule()
	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// confirmDeleteModule deletes the selected module and its tasks, then
// selects the first module again.
func (m Model) confirmDeleteModule() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.NormalMode)

	ctx, cancel := m.DbContext()
	defer cancel()
	if err := m.Lists.DeleteSelectedModule(ctx); err != nil {
		m.reportError("deleting module", err)
		return m, nil
	}
	m.afterModulesChanged()
	if m.Lists.Modules.Len() == 0 {
		m.UiState.SetFocus(state.ModulePane)
	}
	return m, nil
}

// handleDeleteTaskConfirm handles task deletion confirmation.
func (m Model) handleDeleteTaskConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDeleteTask()
	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// confirmDeleteTask deletes the task under the cursor.
func (m Model) confirmDeleteTask() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.NormalMode)

	ctx, cancel := m.DbContext()
	defer cancel()
	if err := m.Lists.Tasks.Delete(ctx, m.UiState.SelectedTask()); err != nil {
		m.reportError("deleting task", err)
		return m, nil
	}
	m.afterTasksChanged()
	return m, nil
}

// handleNotice keeps the notice up until it is dismissed.
func (m Model) handleNotice(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "space", "q":
		m.UiState.DismissNotice()
	}
	return m, nil
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
