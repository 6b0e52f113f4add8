package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasques/internal/listmodel"
	"github.com/thenoetrevino/tasques/internal/tui/components"
	"github.com/thenoetrevino/tasques/internal/tui/notifications"
	"github.com/thenoetrevino/tasques/internal/tui/state"
)

// View renders the two panes with any modal drawn on top.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.renderBoard())}
	if modal := m.renderModalLayer(); modal != nil {
		layers = append(layers, modal)
	}
	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// renderBoard renders title bar, module pane, task grid and status bar.
func (m Model) renderBoard() string {
	layout := m.Layout()

	title := "tasques"
	if module := m.currentModule(); module != nil {
		title += " · " + module.Name
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderModulePane(layout),
		m.renderTaskPane(layout),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		components.RenderTitleBar(layout.Width, title),
		panes,
		components.RenderStatusBar(layout.Width, m.statusLine()),
	)
}

func (m Model) renderModulePane(layout components.Layout) string {
	rows := m.Lists.Modules.Rows()
	names := make([]string, len(rows))
	for i, module := range rows {
		names[i] = module.Name
	}

	props := components.ModulePaneProps{
		Layout:   layout,
		Names:    names,
		Selected: m.Lists.Selected(),
		Offset:   m.UiState.ModuleScrollOffset(),
		Focused:  m.UiState.Focus() == state.ModulePane,
	}
	if m.UiState.Mode() == state.RenameModuleMode {
		props.Editing = "> " + m.EditState.Input.View()
	}
	return components.RenderModulePane(props)
}

func (m Model) renderTaskPane(layout components.Layout) string {
	tasks := m.Lists.Tasks
	columns := tasks.Columns()

	props := components.TaskPaneProps{
		Layout:    layout,
		Titles:    make([]string, len(columns)),
		Centred:   make([]bool, len(columns)),
		Cells:     make([][]string, tasks.Len()),
		Checked:   make([][]bool, tasks.Len()),
		CursorRow: m.UiState.SelectedTask(),
		CursorCol: m.UiState.SelectedColumn(),
		Offset:    m.UiState.TaskScrollOffset(),
		Focused:   m.UiState.Focus() == state.TaskPane,
	}
	for col, c := range columns {
		props.Titles[col] = c.Title
		props.Centred[col] = c.Kind == listmodel.KindBool
	}
	for row := range tasks.Len() {
		props.Cells[row] = make([]string, len(columns))
		props.Checked[row] = make([]bool, len(columns))
		for col := range columns {
			props.Cells[row][col] = tasks.Display(row, col)
			if v, ok := tasks.Value(row, col); ok && v.Kind == listmodel.KindBool {
				props.Checked[row][col] = v.Checked
			}
		}
	}

	if m.UiState.Mode() == state.EditCellMode {
		switch m.EditState.Kind {
		case listmodel.EditorText:
			props.EditView = m.EditState.Input.View()
		case listmodel.EditorDate:
			props.EditView = m.EditState.Picker.View()
		}
	}

	if _, ok := tasks.Filter(); !ok {
		props.Empty = "no module selected"
	} else {
		props.Empty = "no tasks, press " + m.Config.KeyMappings.AddTask + " to add one"
	}
	return components.RenderTaskPane(props)
}

// statusLine shows the latest notification, or the short key help.
func (m Model) statusLine() string {
	if n, ok := m.NotificationState.Last(); ok {
		return notifications.RenderInline(n)
	}
	return m.help.View(m.keys)
}
