package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasques/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.UiState.SetWidth(size.Width)
		m.UiState.SetHeight(size.Height)
		m.afterTasksChanged()
		return m, nil
	}

	// forms need every message, not just key presses
	switch m.UiState.Mode() {
	case state.ModuleFormMode:
		return m.updateModuleForm(msg)
	case state.TaskFormMode:
		return m.updateTaskForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseClickMsg:
		if !m.UiState.Mode().IsModal() {
			return m.handleMouseClick(msg)
		}
	case tea.MouseReleaseMsg:
		if !m.UiState.Mode().IsModal() {
			return m.handleMouseRelease(msg)
		}
	}
	return m, nil
}

// handleKeyMsg dispatches a key press to the handler of the current mode.
// Modal modes receive every key so nothing leaks to the panes behind them.
func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.DeleteModuleConfirmMode:
		return m.handleDeleteModuleConfirm(msg)
	case state.DeleteTaskConfirmMode:
		return m.handleDeleteTaskConfirm(msg)
	case state.EditCellMode:
		return m.handleEditCell(msg)
	case state.RenameModuleMode:
		return m.handleRenameModule(msg)
	case state.NoticeMode:
		return m.handleNotice(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	}
	return m, nil
}
