package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasques/internal/app"
	"github.com/thenoetrevino/tasques/internal/config"
	"github.com/thenoetrevino/tasques/internal/database"
	"github.com/thenoetrevino/tasques/internal/listmodel"
	"github.com/thenoetrevino/tasques/internal/models"
	"github.com/thenoetrevino/tasques/internal/tui/components"
	"github.com/thenoetrevino/tasques/internal/tui/state"
)

// dbTimeout bounds every store call made from Update.
const dbTimeout = 5 * time.Second

// Model represents the application state for the TUI
type Model struct {
	Config *config.Config
	App    *app.App
	Lists  *listmodel.Coordinator

	UiState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState
	EditState         *state.EditState

	keys keyMap
	help help.Model
	now  func() time.Time
}

// InitialModel creates the TUI model and loads the module list, selecting
// the first module. A load failure is shown as a notice instead of
// aborting, so the user still gets a screen.
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		Config:            cfg,
		App:               a,
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		EditState:         state.NewEditState(),
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
		now:               time.Now,
	}

	lists, err := a.NewCoordinator(ctx)
	if err != nil {
		slog.Error("Error loading modules", "error", err)
		lists = listmodel.NewCoordinator(
			listmodel.NewModuleList(a.ModuleService),
			listmodel.NewTaskList(a.TaskService),
		)
		m.UiState.ShowNotice(errorMessage(err))
	}
	m.Lists = lists

	return m
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}

// DbContext returns a context for a single store call.
func (m Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// Layout returns the current screen geometry.
func (m Model) Layout() components.Layout {
	return components.NewLayout(m.UiState.Width(), m.UiState.Height())
}

// currentModule returns the selected module, or nil.
func (m Model) currentModule() *models.Module {
	module, _ := m.Lists.SelectedModule()
	return module
}

// currentTask returns the task under the grid cursor, or nil.
func (m Model) currentTask() *models.Task {
	return m.Lists.Tasks.At(m.UiState.SelectedTask())
}

// afterTasksChanged keeps the cursor inside the grid and on screen.
func (m Model) afterTasksChanged() {
	m.UiState.ClampTaskSelection(m.Lists.Tasks.Len(), len(m.Lists.Tasks.Columns()))
	m.UiState.EnsureTaskVisible(m.Layout().VisibleRows())
}

// afterModulesChanged resets the grid cursor for the newly selected module.
func (m Model) afterModulesChanged() {
	m.UiState.ResetTaskSelection()
	m.UiState.EnsureModuleVisible(m.Lists.Selected(), m.Layout().VisibleRows())
}

// reportError logs a failed store call and blocks on a notice carrying the
// driver's own message.
func (m Model) reportError(action string, err error) {
	slog.Error("Error "+action, "error", err)
	m.UiState.ShowNotice(errorMessage(err))
}

// errorMessage prefers the SQLite message over our wrapping.
func errorMessage(err error) string {
	if msg := database.NativeMessage(err); msg != "" {
		return msg
	}
	return err.Error()
}
