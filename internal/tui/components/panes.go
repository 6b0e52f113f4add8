package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/tasques/internal/listmodel"
)

// fit truncates or pads s to exactly width terminal cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// centre places a mark inside width cells at the checkbox position.
func centre(s string, width int) string {
	r := listmodel.CheckRect(listmodel.Rect{Width: width, Height: 1})
	return fit(strings.Repeat(" ", r.X)+s, width)
}

// box frames exactly height lines of inner content.
func box(style lipgloss.Style, lines []string, width, height int) string {
	for len(lines) < height {
		lines = append(lines, fit("", width))
	}
	return style.Render(strings.Join(lines[:height], "\n"))
}

// ModulePaneProps holds the data needed to render the module pane.
type ModulePaneProps struct {
	Layout   Layout
	Names    []string
	Selected int
	Offset   int
	Focused  bool
	// Editing replaces the selected row when non-empty (rename in progress)
	Editing string
}

// RenderModulePane renders the module list.
func RenderModulePane(p ModulePaneProps) string {
	in := p.Layout.ModuleInner()
	lines := []string{TitleStyle.Render(fit("Modules", in.Width))}

	if len(p.Names) == 0 {
		lines = append(lines, SubtleStyle.Render(fit("no modules", in.Width)))
	}
	visible := max(in.Height-paneHeaderLines, 1)
	for i := p.Offset; i < len(p.Names) && i < p.Offset+visible; i++ {
		switch {
		case i == p.Selected && p.Editing != "":
			lines = append(lines, EditCellStyle.Render(fit(p.Editing, in.Width)))
		case i == p.Selected:
			lines = append(lines, SelectedRowStyle.Render(fit(p.Names[i], in.Width)))
		default:
			lines = append(lines, fit(p.Names[i], in.Width))
		}
	}

	style := PaneStyle
	if p.Focused {
		style = FocusedPaneStyle
	}
	return box(style, lines, in.Width, in.Height)
}

// TaskPaneProps holds the data needed to render the task grid.
type TaskPaneProps struct {
	Layout  Layout
	Titles  []string
	Centred []bool     // per column: draw the value at the checkbox position
	Cells   [][]string // display text per row and column
	Checked [][]bool   // per row and column: value is a ticked checkbox

	CursorRow int
	CursorCol int
	Offset    int
	Focused   bool

	// EditView replaces the cursor cell when non-empty
	EditView string

	// Empty is shown instead of rows when there are none
	Empty string
}

// RenderTaskPane renders the task grid.
func RenderTaskPane(p TaskPaneProps) string {
	in := p.Layout.TaskInner()
	widths := p.Layout.TaskColumnWidths()
	gap := strings.Repeat(" ", columnGap)

	header := make([]string, len(widths))
	for col, w := range widths {
		title := ""
		if col < len(p.Titles) {
			title = p.Titles[col]
		}
		if col < len(p.Centred) && p.Centred[col] {
			header[col] = HeaderStyle.Render(centre(title, w))
		} else {
			header[col] = HeaderStyle.Render(fit(title, w))
		}
	}
	lines := []string{fit(strings.Join(header, gap), in.Width)}

	if len(p.Cells) == 0 && p.Empty != "" {
		lines = append(lines, SubtleStyle.Render(fit(p.Empty, in.Width)))
	}

	for row := p.Offset; row < len(p.Cells) && row < p.Offset+p.Layout.VisibleRows(); row++ {
		cells := make([]string, len(widths))
		for col, w := range widths {
			cells[col] = renderCell(p, row, col, w)
		}
		lines = append(lines, fit(strings.Join(cells, gap), in.Width))
	}

	style := PaneStyle
	if p.Focused {
		style = FocusedPaneStyle
	}
	return box(style, lines, in.Width, in.Height)
}

func renderCell(p TaskPaneProps, row, col, width int) string {
	text := ""
	if col < len(p.Cells[row]) {
		text = p.Cells[row][col]
	}
	centred := col < len(p.Centred) && p.Centred[col]
	isCursor := p.Focused && row == p.CursorRow && col == p.CursorCol

	if isCursor && p.EditView != "" {
		return EditCellStyle.Render(fit(p.EditView, width))
	}

	var cell string
	if centred {
		cell = centre(text, width)
	} else {
		cell = fit(text, width)
	}

	switch {
	case isCursor:
		return CursorCellStyle.Render(cell)
	case row == p.CursorRow:
		return SelectedRowStyle.Render(cell)
	case row < len(p.Checked) && col < len(p.Checked[row]) && p.Checked[row][col]:
		return CheckedStyle.Render(cell)
	default:
		return cell
	}
}

// RenderTitleBar renders the top line.
func RenderTitleBar(width int, title string) string {
	return TitleStyle.Render(fit(title, width))
}

// RenderStatusBar renders the bottom line.
func RenderStatusBar(width int, content string) string {
	return StatusBarStyle.Render(fit(content, width))
}
