package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasques/internal/tui/components"
	"github.com/thenoetrevino/tasques/internal/tui/notifications"
	"github.com/thenoetrevino/tasques/internal/tui/state"
)

// centeredLayer positions content in the middle of the screen.
func (m Model) centeredLayer(content string) *lipgloss.Layer {
	if content == "" {
		return nil
	}
	x := max((m.UiState.Width()-lipgloss.Width(content))/2, 0)
	y := max((m.UiState.Height()-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// renderModalLayer returns the overlay for the current modal mode, if any.
func (m Model) renderModalLayer() *lipgloss.Layer {
	switch m.UiState.Mode() {
	case state.ModuleFormMode:
		return m.renderModuleFormLayer()
	case state.TaskFormMode:
		return m.renderTaskFormLayer()
	case state.DeleteModuleConfirmMode:
		return m.renderDeleteModuleLayer()
	case state.DeleteTaskConfirmMode:
		return m.renderDeleteTaskLayer()
	case state.NoticeMode:
		return m.renderNoticeLayer()
	case state.HelpMode:
		return m.renderHelpLayer()
	}
	return nil
}

func (m Model) dialogWidth() int {
	return min(max(m.UiState.Width()/2, 40), m.UiState.Width())
}

func (m Model) renderModuleFormLayer() *lipgloss.Layer {
	if m.FormState.ModuleForm == nil {
		return nil
	}
	content := components.TitleStyle.Render("New module") + "\n\n" + m.FormState.ModuleForm.View()
	return m.centeredLayer(components.CreateInputBoxStyle.Width(m.dialogWidth()).Render(content))
}

func (m Model) renderTaskFormLayer() *lipgloss.Layer {
	fs := m.FormState
	title := "New task"
	if module := m.currentModule(); module != nil {
		title += " in " + module.Name
	}

	label := func(text string, field state.TaskFormField) string {
		if fs.TaskFocus == field {
			return components.TitleStyle.Render("> " + text)
		}
		return components.SubtleStyle.Render("  " + text)
	}

	deadline := fs.TaskDeadlineText()
	if fs.TaskFocus == state.TaskFormDeadline {
		deadline = fs.TaskDeadline.View()
	}

	content := components.TitleStyle.Render(title) + "\n\n" +
		label("Description", state.TaskFormDescription) + "\n  " + fs.TaskDescription.View() + "\n\n" +
		label("Deadline", state.TaskFormDeadline) + "\n  " + deadline + "\n\n" +
		components.SubtleStyle.Render("tab switch field · ←/→ ↑/↓ change date · enter accept · esc cancel")
	return m.centeredLayer(components.FormBoxStyle.Width(m.dialogWidth()).Render(content))
}

func (m Model) renderDeleteModuleLayer() *lipgloss.Layer {
	module := m.currentModule()
	if module == nil {
		return nil
	}
	content := fmt.Sprintf("Delete module '%s'?\n", module.Name)
	switch n := m.UiState.DeleteTaskCount(); n {
	case 0:
		content += "It has no tasks.\n"
	case 1:
		content += "Its 1 task will be deleted too.\n"
	default:
		content += fmt.Sprintf("Its %d tasks will be deleted too.\n", n)
	}
	content += "\n[y]es  [n]o/esc cancel"
	return m.centeredLayer(components.DeleteConfirmBoxStyle.Width(50).Render(content))
}

func (m Model) renderDeleteTaskLayer() *lipgloss.Layer {
	task := m.currentTask()
	if task == nil {
		return nil
	}
	content := fmt.Sprintf("Delete task '%s'?\n\n[y]es  [n]o/esc cancel", task.Description)
	return m.centeredLayer(components.DeleteConfirmBoxStyle.Width(50).Render(content))
}

func (m Model) renderNoticeLayer() *lipgloss.Layer {
	width := m.dialogWidth() - 6
	return m.centeredLayer(components.NoticeBoxStyle.Render(notifications.RenderNotice(m.UiState.Notice(), width)))
}
