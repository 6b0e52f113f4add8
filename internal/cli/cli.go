// Package cli holds the pieces shared by the module and task subcommands:
// store access, output formatting and exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/tasques/internal/app"
)

type contextKey string

const (
	appKey    contextKey = "app"
	dbPathKey contextKey = "dbPath"
)

// WithApp makes commands run against an already open application.
// Tests use it to point commands at an in-memory store.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithDatabasePath records the store file commands should open.
func WithDatabasePath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, dbPathKey, path)
}

// CLI represents the CLI application context
type CLI struct {
	App   *app.App
	owned bool
}

// GetCLIFromContext returns the application injected with WithApp, or opens
// the store at the path recorded with WithDatabasePath.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	path, _ := ctx.Value(dbPathKey).(string)
	if path == "" {
		return nil, errors.New("no database path configured")
	}
	a, err := app.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return &CLI{App: a, owned: true}, nil
}

// Close releases the store if this CLI opened it.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
