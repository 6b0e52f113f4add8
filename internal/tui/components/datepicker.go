package components

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasques/internal/tui/theme"
)

// DateSegment is the part of the date the picker is changing.
type DateSegment int

const (
	SegmentDay DateSegment = iota
	SegmentMonth
	SegmentYear
)

// DatePickerAction is what a key press asked the owner to do.
type DatePickerAction int

const (
	DatePickerNone DatePickerAction = iota
	DatePickerCommit
	DatePickerCancel
)

// DatePicker edits a calendar date one segment at a time, shown as
// dd/MM/yyyy.
type DatePicker struct {
	date    time.Time
	segment DateSegment
}

// NewDatePicker starts on date, with the day segment active.
func NewDatePicker(date time.Time) DatePicker {
	y, m, d := date.Date()
	return DatePicker{date: time.Date(y, m, d, 0, 0, 0, 0, date.Location())}
}

// Value returns the picked date.
func (p DatePicker) Value() time.Time {
	return p.date
}

// Segment returns the active segment.
func (p DatePicker) Segment() DateSegment {
	return p.segment
}

// HandleKey applies one key press. Left/right move between segments,
// up/down change the active one, enter commits and esc cancels.
func (p DatePicker) HandleKey(key string) (DatePicker, DatePickerAction) {
	switch key {
	case "enter":
		return p, DatePickerCommit
	case "esc":
		return p, DatePickerCancel
	case "left", "h", "shift+tab":
		if p.segment > SegmentDay {
			p.segment--
		}
	case "right", "l", "tab", "/":
		if p.segment < SegmentYear {
			p.segment++
		}
	case "up", "k", "+":
		p.date = p.step(1)
	case "down", "j", "-":
		p.date = p.step(-1)
	}
	return p, DatePickerNone
}

func (p DatePicker) step(n int) time.Time {
	switch p.segment {
	case SegmentMonth:
		return addMonths(p.date, n)
	case SegmentYear:
		return addMonths(p.date, 12*n)
	default:
		return p.date.AddDate(0, 0, n)
	}
}

// addMonths moves by n months, clamping the day to the target month's
// length instead of spilling into the next month.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	return time.Date(first.Year(), first.Month(), min(d, last), 0, 0, 0, 0, t.Location())
}

// View renders the date with the active segment highlighted.
func (p DatePicker) View() string {
	active := lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Edit)).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true)

	parts := []string{
		fmt.Sprintf("%02d", p.date.Day()),
		fmt.Sprintf("%02d", int(p.date.Month())),
		fmt.Sprintf("%04d", p.date.Year()),
	}
	parts[p.segment] = active.Render(parts[p.segment])
	return parts[0] + "/" + parts[1] + "/" + parts[2]
}
