package listmodel

// Check marks as drawn in the grid. Both are CheckboxWidth cells wide.
const (
	CheckedMark   = "[x]"
	UncheckedMark = "[ ]"
)

// Checkbox size in terminal cells.
const (
	CheckboxWidth  = 3
	CheckboxHeight = 1
)

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// CheckRect is the checkbox rectangle centred horizontally and vertically
// in cell. Odd leftovers go to the right and bottom. A cell smaller than
// the checkbox yields a rectangle clipped to the cell.
func CheckRect(cell Rect) Rect {
	w := min(CheckboxWidth, max(cell.Width, 0))
	h := min(CheckboxHeight, max(cell.Height, 0))
	return Rect{
		X:      cell.X + (cell.Width-w)/2,
		Y:      cell.Y + (cell.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// EventType classifies input events delivered to a cell.
type EventType int

const (
	EventOther EventType = iota
	EventMousePress
	EventMouseRelease
	EventKeyPress
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Event is an input event in terminal coordinates.
type Event struct {
	Type   EventType
	Button MouseButton
	X, Y   int
	Key    string
}

// Toggle keys for a focused check cell.
const (
	KeySpace  = "space"
	KeySelect = "select"
)

// Toggles reports whether ev flips the value of col for a cell drawn at
// cell. Only check columns toggle, and only on a primary-button release
// inside the centred checkbox or on a space/select key press.
func (c Column) Toggles(ev Event, cell Rect) bool {
	if c.Kind != KindBool {
		return false
	}
	switch ev.Type {
	case EventMouseRelease:
		return ev.Button == ButtonPrimary && CheckRect(cell).Contains(ev.X, ev.Y)
	case EventKeyPress:
		return ev.Key == KeySpace || ev.Key == KeySelect
	default:
		return false
	}
}
