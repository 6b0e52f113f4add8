// Package notifications renders status bar messages and blocking notices.
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasques/internal/tui/state"
)

// RenderInline renders a one-line notification for the status bar.
func RenderInline(n state.Notification) string {
	s := styleFor(n.Level)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Background(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(s.icon + " " + n.Message)
}

// RenderNotice renders the body of a blocking error notice: a header,
// the store's own message and the dismiss hint.
func RenderNotice(message string, width int) string {
	s := styleFor(state.LevelError)

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Bold(true).
		Render(s.icon + " " + s.title)

	body := lipgloss.NewStyle().
		Width(width).
		Render(message)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Faint(true).
		Render("enter: dismiss")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", hint)
}
