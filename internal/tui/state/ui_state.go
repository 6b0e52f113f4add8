package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	ModuleFormMode                      // Creating a module with huh
	TaskFormMode                        // Creating a task with huh
	DeleteModuleConfirmMode             // Confirming module deletion (cascades to tasks)
	DeleteTaskConfirmMode               // Confirming task deletion
	EditCellMode                        // Editing one task cell inline
	RenameModuleMode                    // Renaming the selected module inline
	NoticeMode                          // Blocking error notice
	HelpMode                            // Displaying help screen
)

// IsModal reports whether the mode swallows all normal-mode input.
func (m Mode) IsModal() bool {
	return m != NormalMode
}

// Pane identifies which side of the screen has keyboard focus.
type Pane int

const (
	ModulePane Pane = iota
	TaskPane
)

// UIState manages the user interface state.
// This includes pane focus, the task grid cursor, scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// focus is the pane receiving navigation keys
	focus Pane

	// selectedTask is the task row under the grid cursor
	selectedTask int

	// selectedColumn is the task column under the grid cursor
	selectedColumn int

	// taskScrollOffset is the first task row drawn
	taskScrollOffset int

	// moduleScrollOffset is the first module row drawn
	moduleScrollOffset int

	width  int
	height int

	mode Mode

	// notice is the message shown while in NoticeMode
	notice string

	// deleteTaskCount is shown by the module delete confirmation
	deleteTaskCount int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		focus: ModulePane,
		mode:  NormalMode,
	}
}

// Focus returns the focused pane.
func (s *UIState) Focus() Pane {
	return s.focus
}

// SetFocus moves keyboard focus to pane.
func (s *UIState) SetFocus(pane Pane) {
	s.focus = pane
}

// ToggleFocus switches focus to the other pane.
func (s *UIState) ToggleFocus() {
	if s.focus == ModulePane {
		s.focus = TaskPane
	} else {
		s.focus = ModulePane
	}
}

// SelectedTask returns the task row under the cursor.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask moves the cursor to row.
func (s *UIState) SetSelectedTask(row int) {
	s.selectedTask = max(row, 0)
}

// SelectedColumn returns the task column under the cursor.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn moves the cursor to col.
func (s *UIState) SetSelectedColumn(col int) {
	s.selectedColumn = max(col, 0)
}

// ClampTaskSelection keeps the cursor inside a grid of rows x cols.
func (s *UIState) ClampTaskSelection(rows, cols int) {
	s.selectedTask = min(s.selectedTask, max(rows-1, 0))
	s.selectedColumn = min(s.selectedColumn, max(cols-1, 0))
}

// ResetTaskSelection puts the cursor back on the first cell.
func (s *UIState) ResetTaskSelection() {
	s.selectedTask = 0
	s.selectedColumn = 0
	s.taskScrollOffset = 0
}

// TaskScrollOffset returns the first task row drawn.
func (s *UIState) TaskScrollOffset() int {
	return s.taskScrollOffset
}

// ModuleScrollOffset returns the first module row drawn.
func (s *UIState) ModuleScrollOffset() int {
	return s.moduleScrollOffset
}

// EnsureTaskVisible scrolls so the selected task row is one of visible rows.
func (s *UIState) EnsureTaskVisible(visible int) {
	s.taskScrollOffset = ensureVisible(s.taskScrollOffset, s.selectedTask, visible)
}

// EnsureModuleVisible scrolls so module row index is one of visible rows.
func (s *UIState) EnsureModuleVisible(index, visible int) {
	s.moduleScrollOffset = ensureVisible(s.moduleScrollOffset, index, visible)
}

func ensureVisible(offset, index, visible int) int {
	visible = max(visible, 1)
	if index < offset {
		return max(index, 0)
	}
	if index >= offset+visible {
		return index - visible + 1
	}
	return offset
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ShowNotice enters NoticeMode with message.
func (s *UIState) ShowNotice(message string) {
	s.notice = message
	s.mode = NoticeMode
}

// Notice returns the blocking notice text.
func (s *UIState) Notice() string {
	return s.notice
}

// DismissNotice leaves NoticeMode.
func (s *UIState) DismissNotice() {
	s.notice = ""
	s.mode = NormalMode
}

// DeleteTaskCount returns the task count shown by the module delete dialog.
func (s *UIState) DeleteTaskCount() int {
	return s.deleteTaskCount
}

// SetDeleteTaskCount stores the task count shown by the module delete dialog.
func (s *UIState) SetDeleteTaskCount(n int) {
	s.deleteTaskCount = n
}
