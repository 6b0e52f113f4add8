package state

import (
	"charm.land/bubbles/v2/textinput"
	"github.com/thenoetrevino/tasques/internal/listmodel"
	"github.com/thenoetrevino/tasques/internal/tui/components"
)

// EditState is the inline editor open on one task cell, or on the
// selected module name while renaming.
type EditState struct {
	Row    int
	Column int
	Kind   listmodel.EditorKind

	Input  textinput.Model
	Picker components.DatePicker
}

// NewEditState creates an idle editor.
func NewEditState() *EditState {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	return &EditState{Input: ti}
}

// StartText opens a text editor on a cell with its current value.
func (s *EditState) StartText(row, col int, value string) {
	s.Row, s.Column = row, col
	s.Kind = listmodel.EditorText
	s.Input.SetValue(value)
	s.Input.CursorEnd()
	s.Input.Focus()
}

// StartDate opens the date picker on a cell.
func (s *EditState) StartDate(row, col int, picker components.DatePicker) {
	s.Row, s.Column = row, col
	s.Kind = listmodel.EditorDate
	s.Picker = picker
}

// Stop closes the editor.
func (s *EditState) Stop() {
	s.Kind = listmodel.EditorNone
	s.Input.Blur()
	s.Input.Reset()
}
