// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasques/internal/config/colors"
	"github.com/thenoetrevino/tasques/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// PaneStyle frames an unfocused pane
	PaneStyle lipgloss.Style

	// FocusedPaneStyle frames the pane receiving keys
	FocusedPaneStyle lipgloss.Style

	// TitleStyle is used for the title bar and pane headers
	TitleStyle lipgloss.Style

	// HeaderStyle is used for the task grid column titles
	HeaderStyle lipgloss.Style

	// SelectedRowStyle marks the selected module and the cursor row
	SelectedRowStyle lipgloss.Style

	// CursorCellStyle marks the cell under the grid cursor
	CursorCellStyle lipgloss.Style

	// EditCellStyle marks a cell with an open editor
	EditCellStyle lipgloss.Style

	// CheckedStyle colours a ticked checkbox
	CheckedStyle lipgloss.Style

	// SubtleStyle is used for placeholders and hints
	SubtleStyle lipgloss.Style

	// FormBoxStyle defines the base style for the new task form (accent border)
	FormBoxStyle lipgloss.Style

	// CreateInputBoxStyle defines the base style for creation dialogs (green border)
	CreateInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// NoticeBoxStyle frames a blocking error notice
	NoticeBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(c colors.ColorScheme) {
	theme.Init(c)

	PaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.PaneBorder))

	FocusedPaneStyle = PaneStyle.
		BorderForeground(lipgloss.Color(theme.FocusedBorder))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(theme.Highlight))

	SelectedRowStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.SelectedBg)).
		Foreground(lipgloss.Color(theme.Normal))

	CursorCellStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.CursorBg)).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true)

	EditCellStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Edit)).
		Underline(true)

	CheckedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Checked)).
		Bold(true)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	CreateInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1, 2)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1)

	NoticeBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.ErrorFg)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))
}
