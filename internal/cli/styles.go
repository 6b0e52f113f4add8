package cli

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasques/internal/config/colors"
)

var (
	TitleStyle   lipgloss.Style
	SubtleStyle  lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	CheckedStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all CLI styles with the given color scheme
func InitStyles(c colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Delete))

	CheckedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Checked))
}
