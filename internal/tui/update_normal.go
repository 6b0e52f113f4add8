package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasques/internal/listmodel"
	"github.com/thenoetrevino/tasques/internal/models"
	"github.com/thenoetrevino/tasques/internal/tui/huhforms"
	"github.com/thenoetrevino/tasques/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, k.SwitchPane):
		m.UiState.ToggleFocus()
		return m, nil
	case key.Matches(msg, k.AddModule):
		return m.handleAddModule()
	case key.Matches(msg, k.DeleteModule):
		return m.handleDeleteModule()
	case key.Matches(msg, k.RenameModule):
		return m.handleRenameModuleStart()
	case key.Matches(msg, k.AddTask):
		return m.handleAddTask()
	}

	if m.UiState.Focus() == state.ModulePane {
		return m.handleModulePaneKey(msg)
	}
	return m.handleTaskPaneKey(msg)
}

func (m Model) handleModulePaneKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevRow):
		return m.selectModule(m.Lists.Selected() - 1)
	case key.Matches(msg, m.keys.NextRow):
		return m.selectModule(m.Lists.Selected() + 1)
	case key.Matches(msg, m.keys.NextColumn), key.Matches(msg, m.keys.EditCell):
		m.UiState.SetFocus(state.TaskPane)
	case key.Matches(msg, m.keys.DeleteTask):
		m.NotificationState.Add(state.LevelInfo, "Focus the task pane to delete a task")
	}
	return m, nil
}

func (m Model) handleTaskPaneKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevRow):
		m.moveTaskCursor(-1, 0)
	case key.Matches(msg, m.keys.NextRow):
		m.moveTaskCursor(1, 0)
	case key.Matches(msg, m.keys.PrevColumn):
		if m.UiState.SelectedColumn() == 0 {
			m.UiState.SetFocus(state.ModulePane)
		} else {
			m.moveTaskCursor(0, -1)
		}
	case key.Matches(msg, m.keys.NextColumn):
		m.moveTaskCursor(0, 1)
	case key.Matches(msg, m.keys.ToggleDone):
		return m.handleToggleKey(msg)
	case key.Matches(msg, m.keys.EditCell):
		return m.handleEditCellStart()
	case key.Matches(msg, m.keys.DeleteTask):
		return m.handleDeleteTask()
	}
	return m, nil
}

// selectModule moves the module selection; the task grid follows it.
func (m Model) selectModule(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= m.Lists.Modules.Len() {
		return m, nil
	}
	ctx, cancel := m.DbContext()
	defer cancel()
	if err := m.Lists.Select(ctx, index); err != nil {
		m.reportError("selecting module", err)
		return m, nil
	}
	m.afterModulesChanged()
	return m, nil
}

func (m Model) moveTaskCursor(dRow, dCol int) {
	rows := m.Lists.Tasks.Len()
	cols := len(m.Lists.Tasks.Columns())
	if rows == 0 {
		return
	}
	m.UiState.SetSelectedTask(min(max(m.UiState.SelectedTask()+dRow, 0), rows-1))
	m.UiState.SetSelectedColumn(min(max(m.UiState.SelectedColumn()+dCol, 0), cols-1))
	m.UiState.EnsureTaskVisible(m.Layout().VisibleRows())
}

// handleToggleKey flips the check cell under the cursor. Other columns
// ignore the key.
func (m Model) handleToggleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	row, col := m.UiState.SelectedTask(), m.UiState.SelectedColumn()
	ev := listmodel.Event{Type: listmodel.EventKeyPress, Key: msg.String()}

	ctx, cancel := m.DbContext()
	defer cancel()
	if _, err := m.Lists.Tasks.HandleEvent(ctx, row, col, ev, m.visibleCellRect(row, col)); err != nil {
		m.reportError("toggling task", err)
	}
	return m, nil
}

func (m Model) handleAddModule() (tea.Model, tea.Cmd) {
	m.FormState.ResetModuleForm()
	m.FormState.ModuleForm = huhforms.CreateModuleForm(
		&m.FormState.FormModuleName,
		&m.FormState.FormModuleConfirm,
	).WithTheme(huhforms.CreateTheme(m.Config.ColorScheme))
	m.UiState.SetMode(state.ModuleFormMode)
	return m, m.FormState.ModuleForm.Init()
}

func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	if m.currentModule() == nil {
		m.NotificationState.Add(state.LevelInfo, "No module selected")
		return m, nil
	}
	m.FormState.ResetTaskForm(models.DefaultDeadline(m.now()))
	m.UiState.SetMode(state.TaskFormMode)
	return m, nil
}

func (m Model) handleDeleteModule() (tea.Model, tea.Cmd) {
	module := m.currentModule()
	if module == nil {
		m.NotificationState.Add(state.LevelInfo, "No module to delete")
		return m, nil
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	count, err := m.App.ModuleService.GetTaskCount(ctx, module.ID)
	if err != nil {
		m.reportError("counting tasks", err)
		return m, nil
	}
	m.UiState.SetDeleteTaskCount(count)
	m.UiState.SetMode(state.DeleteModuleConfirmMode)
	return m, nil
}

func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	if m.currentTask() == nil {
		m.NotificationState.Add(state.LevelInfo, "No task to delete")
		return m, nil
	}
	if !m.Config.ConfirmTaskDelete {
		return m.confirmDeleteTask()
	}
	m.UiState.SetMode(state.DeleteTaskConfirmMode)
	return m, nil
}
