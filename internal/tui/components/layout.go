package components

import "github.com/thenoetrevino/tasques/internal/listmodel"

const (
	titleBarHeight  = 1
	statusBarHeight = 1
	paneBorder      = 1
	paneHeaderLines = 1
	columnGap       = 1

	minModulePaneWidth = 16
	maxModulePaneWidth = 30
	deadlineColWidth   = 12
	doneColWidth       = 6
	minDescColWidth    = 8
)

// Layout is the screen geometry shared by rendering and mouse hit testing.
// Both panes are bordered boxes below the title bar; inside each the first
// line is a header and rows follow one per line.
type Layout struct {
	Width, Height int
	ModulePane    listmodel.Rect
	TaskPane      listmodel.Rect
}

// NewLayout splits a width x height screen into the two panes.
func NewLayout(width, height int) Layout {
	moduleWidth := min(max(width/4, minModulePaneWidth), maxModulePaneWidth)
	paneHeight := max(height-titleBarHeight-statusBarHeight, 2*paneBorder+paneHeaderLines+1)
	return Layout{
		Width:      width,
		Height:     height,
		ModulePane: listmodel.Rect{X: 0, Y: titleBarHeight, Width: moduleWidth, Height: paneHeight},
		TaskPane: listmodel.Rect{
			X:      moduleWidth,
			Y:      titleBarHeight,
			Width:  max(width-moduleWidth, 2*paneBorder+minDescColWidth),
			Height: paneHeight,
		},
	}
}

func inner(r listmodel.Rect) listmodel.Rect {
	return listmodel.Rect{
		X:      r.X + paneBorder,
		Y:      r.Y + paneBorder,
		Width:  max(r.Width-2*paneBorder, 0),
		Height: max(r.Height-2*paneBorder, 0),
	}
}

// ModuleInner is the module pane without its border.
func (l Layout) ModuleInner() listmodel.Rect {
	return inner(l.ModulePane)
}

// TaskInner is the task pane without its border.
func (l Layout) TaskInner() listmodel.Rect {
	return inner(l.TaskPane)
}

// VisibleRows is how many list rows fit below a pane header.
func (l Layout) VisibleRows() int {
	return max(l.TaskInner().Height-paneHeaderLines, 1)
}

// TaskColumnWidths returns the width of each task column; the description
// takes whatever the fixed columns leave.
func (l Layout) TaskColumnWidths() []int {
	fixed := deadlineColWidth + doneColWidth + 2*columnGap
	return []int{
		max(l.TaskInner().Width-fixed, minDescColWidth),
		deadlineColWidth,
		doneColWidth,
	}
}

// TaskCellRect is the screen rectangle of a cell on visible row row.
func (l Layout) TaskCellRect(row, col int) listmodel.Rect {
	in := l.TaskInner()
	widths := l.TaskColumnWidths()
	x := in.X
	for i := 0; i < col && i < len(widths); i++ {
		x += widths[i] + columnGap
	}
	w := 0
	if col >= 0 && col < len(widths) {
		w = widths[col]
	}
	return listmodel.Rect{X: x, Y: in.Y + paneHeaderLines + row, Width: w, Height: 1}
}

// TaskCellAt maps a screen point to a visible task row and column.
func (l Layout) TaskCellAt(x, y int) (row, col int, ok bool) {
	in := l.TaskInner()
	row = y - in.Y - paneHeaderLines
	if row < 0 || row >= l.VisibleRows() {
		return 0, 0, false
	}
	for c := range l.TaskColumnWidths() {
		if l.TaskCellRect(row, c).Contains(x, y) {
			return row, c, true
		}
	}
	return 0, 0, false
}

// ModuleRowAt maps a screen point to a visible module row.
func (l Layout) ModuleRowAt(x, y int) (row int, ok bool) {
	in := l.ModuleInner()
	row = y - in.Y - paneHeaderLines
	if x < in.X || x >= in.X+in.Width || row < 0 || row >= max(in.Height-paneHeaderLines, 1) {
		return 0, false
	}
	return row, true
}
