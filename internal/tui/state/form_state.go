package state

import (
	"time"

	"charm.land/bubbles/v2/textinput"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tasques/internal/models"
	"github.com/thenoetrevino/tasques/internal/tui/components"
)

// TaskFormField is the new-task form field holding focus.
type TaskFormField int

const (
	TaskFormDescription TaskFormField = iota
	TaskFormDeadline
)

// FormState holds the forms used to create rows and the values they are
// bound to.
type FormState struct {
	// New module prompt
	ModuleForm        *huh.Form
	FormModuleName    string
	FormModuleConfirm bool

	// New task form: free text description, deadline from the date picker
	TaskDescription textinput.Model
	TaskDeadline    components.DatePicker
	TaskFocus       TaskFormField
}

// NewFormState creates a new FormState with no active form.
func NewFormState() *FormState {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "What has to be done?"
	ti.CharLimit = 256
	return &FormState{TaskDescription: ti}
}

// ResetModuleForm clears the module prompt values before a new form is built.
func (s *FormState) ResetModuleForm() {
	s.FormModuleName = ""
	s.FormModuleConfirm = true
}

// ClearModuleForm drops the module prompt.
func (s *FormState) ClearModuleForm() {
	s.ModuleForm = nil
	s.FormModuleName = ""
	s.FormModuleConfirm = false
}

// ResetTaskForm empties the description, starts the picker on deadline and
// focuses the description.
func (s *FormState) ResetTaskForm(deadline time.Time) {
	s.TaskDescription.Reset()
	s.TaskDescription.Focus()
	s.TaskDeadline = components.NewDatePicker(deadline)
	s.TaskFocus = TaskFormDescription
}

// ToggleTaskFocus moves focus between the description and the deadline.
func (s *FormState) ToggleTaskFocus() {
	if s.TaskFocus == TaskFormDescription {
		s.TaskFocus = TaskFormDeadline
		s.TaskDescription.Blur()
		return
	}
	s.TaskFocus = TaskFormDescription
	s.TaskDescription.Focus()
}

// TaskDeadlineText is the picked deadline as stored text.
func (s *FormState) TaskDeadlineText() string {
	return models.FormatDeadline(s.TaskDeadline.Value())
}

// ClearTaskForm drops the task form values.
func (s *FormState) ClearTaskForm() {
	s.TaskDescription.Blur()
	s.TaskDescription.Reset()
	s.TaskFocus = TaskFormDescription
}
