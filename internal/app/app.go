package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tasques/internal/database"
	"github.com/thenoetrevino/tasques/internal/listmodel"
	moduleservice "github.com/thenoetrevino/tasques/internal/services/module"
	taskservice "github.com/thenoetrevino/tasques/internal/services/task"
)

// App holds the database handle and the services built on it.
// Both the TUI and the CLI get their dependencies from here.
type App struct {
	db     *sql.DB
	logger *slog.Logger

	ModuleService moduleservice.Service
	TaskService   taskservice.Service
}

// New creates an App over an already open database.
func New(db *sql.DB, opts ...Option) *App {
	cfg := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	repo := database.NewRepository(db)
	return &App{
		db:            db,
		logger:        cfg.logger,
		ModuleService: moduleservice.NewService(repo),
		TaskService:   taskservice.NewService(repo),
	}
}

// Open opens (and on first use creates) the store at path and builds an App.
func Open(ctx context.Context, path string, opts ...Option) (*App, error) {
	db, err := database.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	a := New(db, opts...)
	a.logger.Info("store opened", "path", path)
	return a, nil
}

// NewCoordinator builds the list adapters over the app's services and
// loads the initial selection.
func (a *App) NewCoordinator(ctx context.Context) (*listmodel.Coordinator, error) {
	c := listmodel.NewCoordinator(
		listmodel.NewModuleList(a.ModuleService),
		listmodel.NewTaskList(a.TaskService),
	)
	if err := c.Sync(ctx); err != nil {
		return nil, fmt.Errorf("failed to load modules: %w", err)
	}
	return c, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

type appConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
