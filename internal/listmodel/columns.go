package listmodel

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/tasques/internal/models"
)

// Kind selects how a column is read, displayed, edited and written.
type Kind int

const (
	KindText Kind = iota
	KindDate
	KindBool
)

// Column describes one visible column of the task grid.
type Column struct {
	Title string
	Field models.TaskField
	Kind  Kind
}

// TaskColumns are the visible task columns in display order.
// id and module_id are never shown.
var TaskColumns = []Column{
	{Title: "Description", Field: models.TaskFieldDescription, Kind: KindText},
	{Title: "Deadline", Field: models.TaskFieldDeadline, Kind: KindDate},
	{Title: "Done", Field: models.TaskFieldFinished, Kind: KindBool},
}

// CellValue is the typed content of one cell.
// Text is always set (for dates it is the stored text); Date is only
// meaningful for KindDate when Valid, Checked only for KindBool.
type CellValue struct {
	Kind    Kind
	Text    string
	Date    time.Time
	Checked bool
	Valid   bool
}

// EditorKind says which edit surface a column uses.
type EditorKind int

const (
	EditorNone EditorKind = iota
	EditorText
	EditorDate
)

// Editor returns the edit surface for the column. Bool columns have no
// editor; they toggle in place.
func (c Column) Editor() EditorKind {
	switch c.Kind {
	case KindText:
		return EditorText
	case KindDate:
		return EditorDate
	default:
		return EditorNone
	}
}

// Read converts the stored task field into a cell value.
func (c Column) Read(task *models.Task) CellValue {
	switch c.Kind {
	case KindDate:
		v := CellValue{Kind: KindDate, Text: task.Deadline}
		if date, err := models.ParseDeadline(task.Deadline); err == nil {
			v.Date = date
			v.Valid = true
		}
		return v
	case KindBool:
		checked := models.FinishedToBool(task.Finished)
		return CellValue{Kind: KindBool, Text: checkText(checked), Checked: checked, Valid: true}
	default:
		return CellValue{Kind: KindText, Text: fieldText(task, c.Field), Valid: true}
	}
}

// Display returns the cell text shown in the grid.
func (c Column) Display(task *models.Task) string {
	v := c.Read(task)
	if v.Kind == KindDate && v.Valid {
		return models.FormatDeadline(v.Date)
	}
	return v.Text
}

// Stored converts a cell value into what the store keeps for the column:
// text as is, dates as dd/MM/yyyy text, checks as 1 or 0.
func (c Column) Stored(v CellValue) (any, error) {
	switch c.Kind {
	case KindDate:
		if v.Date.IsZero() {
			return nil, fmt.Errorf("%w: empty date", models.ErrInvalidDeadline)
		}
		return models.FormatDeadline(v.Date), nil
	case KindBool:
		return models.FinishedFromBool(v.Checked), nil
	default:
		return v.Text, nil
	}
}

// TextValue builds a value for a text cell.
func TextValue(text string) CellValue {
	return CellValue{Kind: KindText, Text: text, Valid: true}
}

// DateValue builds a value for a date cell.
func DateValue(date time.Time) CellValue {
	return CellValue{Kind: KindDate, Text: models.FormatDeadline(date), Date: date, Valid: true}
}

// BoolValue builds a value for a check cell.
func BoolValue(checked bool) CellValue {
	return CellValue{Kind: KindBool, Text: checkText(checked), Checked: checked, Valid: true}
}

func checkText(checked bool) string {
	if checked {
		return CheckedMark
	}
	return UncheckedMark
}

func fieldText(task *models.Task, field models.TaskField) string {
	switch field {
	case models.TaskFieldDescription:
		return task.Description
	case models.TaskFieldDeadline:
		return task.Deadline
	case models.TaskFieldFinished:
		return fmt.Sprint(task.Finished)
	default:
		return ""
	}
}
