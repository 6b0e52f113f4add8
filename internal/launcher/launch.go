// Package launcher starts the TUI over an open store.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasques/internal/app"
	"github.com/thenoetrevino/tasques/internal/config"
	"github.com/thenoetrevino/tasques/internal/tui/core"
)

// Launch opens the store at dbPath and runs the TUI until the user quits
// or the process is interrupted. Store open failures are returned wrapped
// so the caller can exit non-zero before any screen is drawn.
func Launch(ctx context.Context, cfg *config.Config, dbPath string) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := app.Open(ctx, dbPath, app.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", dbPath, err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()
	slog.Info("store opened", "path", dbPath)

	p := tea.NewProgram(core.New(ctx, application, cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
