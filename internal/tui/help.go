package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tasques/internal/tui/components"
)

var helpSections = []string{"Navigation", "Modules", "Tasks", "Other"}

// helpMarkdown lists every binding as markdown tables, one per group.
func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# tasques\n\n")
	b.WriteString("Modules on the left, the selected module's tasks on the right.\n")
	for i, group := range m.keys.FullHelp() {
		b.WriteString("\n## " + helpSections[i] + "\n\n| Key | Action |\n|---|---|\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString("| `" + h.Key + "` | " + h.Desc + " |\n")
		}
	}
	b.WriteString("\nClicking a checkbox toggles it. Forms: `esc` cancels.\n")
	return b.String()
}

func (m Model) renderHelpLayer() *lipgloss.Layer {
	width := min(max(m.UiState.Width()*2/3, 40), m.UiState.Width())
	content := components.RenderMarkdown(m.helpMarkdown(), width-4)
	return m.centeredLayer(components.HelpBoxStyle.Render(content))
}
