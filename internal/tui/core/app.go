package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasques/internal/app"
	"github.com/thenoetrevino/tasques/internal/config"
	"github.com/thenoetrevino/tasques/internal/tui"
)

// Program wraps the TUI Model behind a pointer so tests and the root
// command can inspect state after the program exits.
type Program struct {
	model *tui.Model
}

// New builds the TUI model over an open application.
func New(ctx context.Context, a *app.App, cfg *config.Config) *Program {
	model := tui.InitialModel(ctx, a, cfg)
	return &Program{model: &model}
}

// Init implements tea.Model.
func (p *Program) Init() tea.Cmd {
	return p.model.Init()
}

// Update implements tea.Model and stores the updated Model back.
func (p *Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := p.model.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*p.model = m
	}
	return p, cmd
}

// View implements tea.Model.
func (p *Program) View() tea.View {
	return p.model.View()
}

// Model returns the wrapped Model.
func (p *Program) Model() *tui.Model {
	return p.model
}
