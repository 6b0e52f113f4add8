package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tasques/internal/tui/state"
)

// formConfig holds configuration for generic form handling
type formConfig struct {
	form       *huh.Form
	setForm    func(*huh.Form)
	clearForm  func()
	onComplete func() // Called once the form is submitted
}

// handleFormUpdate forwards a message to the form and finishes it on submit.
// The mode is reset before onComplete runs so a failure can raise a notice.
func (m Model) handleFormUpdate(msg tea.Msg, cfg formConfig) (tea.Model, tea.Cmd) {
	if cfg.form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "esc" {
		m.UiState.SetMode(state.NormalMode)
		cfg.clearForm()
		return m, tea.ClearScreen
	}

	model, cmd := cfg.form.Update(msg)
	form, ok := model.(*huh.Form)
	if !ok {
		return m, cmd
	}
	cfg.setForm(form)

	switch form.State {
	case huh.StateCompleted:
		m.UiState.SetMode(state.NormalMode)
		cfg.onComplete()
		cfg.clearForm()
		return m, tea.ClearScreen
	case huh.StateAborted:
		m.UiState.SetMode(state.NormalMode)
		cfg.clearForm()
		return m, tea.ClearScreen
	}

	return m, cmd
}

// updateModuleForm handles all messages when in ModuleFormMode
func (m Model) updateModuleForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleFormUpdate(msg, formConfig{
		form:       m.FormState.ModuleForm,
		setForm:    func(f *huh.Form) { m.FormState.ModuleForm = f },
		clearForm:  m.FormState.ClearModuleForm,
		onComplete: m.completeModuleForm,
	})
}

// completeModuleForm inserts the module and selects it. Cancel writes nothing.
func (m Model) completeModuleForm() {
	if !m.FormState.FormModuleConfirm {
		return
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	if err := m.Lists.AddModule(ctx, m.FormState.FormModuleName); err != nil {
		m.reportError("creating module", err)
		return
	}
	m.afterModulesChanged()
}

// updateTaskForm handles all messages when in TaskFormMode. tab moves
// between the description and the deadline picker, enter accepts and esc
// cancels without writing.
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.FormState

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if fs.TaskFocus != state.TaskFormDescription {
			return m, nil
		}
		var cmd tea.Cmd
		fs.TaskDescription, cmd = fs.TaskDescription.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		m.UiState.SetMode(state.NormalMode)
		fs.ClearTaskForm()
		return m, nil
	case "enter":
		m.UiState.SetMode(state.NormalMode)
		m.completeTaskForm()
		fs.ClearTaskForm()
		return m, nil
	case "tab", "shift+tab":
		fs.ToggleTaskFocus()
		return m, nil
	}

	if fs.TaskFocus == state.TaskFormDeadline {
		fs.TaskDeadline, _ = fs.TaskDeadline.HandleKey(keyMsg.String())
		return m, nil
	}
	var cmd tea.Cmd
	fs.TaskDescription, cmd = fs.TaskDescription.Update(msg)
	return m, cmd
}

// completeTaskForm inserts an unfinished task under the selected module
// and moves the cursor onto it.
func (m Model) completeTaskForm() {
	ctx, cancel := m.DbContext()
	defer cancel()
	row, err := m.Lists.AddTask(ctx, m.FormState.TaskDescription.Value(), m.FormState.TaskDeadlineText())
	if err != nil {
		m.reportError("creating task", err)
		return
	}
	m.UiState.SetFocus(state.TaskPane)
	m.UiState.SetSelectedTask(row)
	m.UiState.SetSelectedColumn(0)
	m.afterTasksChanged()
}
