// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

var (
	// ErrConnection means the database file could not be opened.
	ErrConnection = errors.New("failed to connect to database")
	// ErrSchema means the tables could not be created on a fresh file.
	ErrSchema = errors.New("failed to create database schema")
)

// Open opens (creating if needed) the database file at path.
// Schema creation and seeding only run when the file is fresh, that is
// when it does not exist yet or is empty.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	fresh, err := isFresh(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: failed to create directory: %w", ErrConnection, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	// SQLite benefits from a single writer connection, and the
	// foreign_keys pragma is per connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Enable foreign key constraints (required for CASCADE deletions)
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("%w: failed to enable foreign keys: %w", ErrConnection, err)
	}

	// Set busy timeout to 5 seconds (SQLite will retry for this duration)
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("%w: failed to set busy timeout: %w", ErrConnection, err)
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("%w: database ping failed: %w", ErrConnection, err)
	}

	if fresh {
		slog.Info("Creating database", "path", path)
		if err := Bootstrap(ctx, db); err != nil {
			closeQuietly(db)
			return nil, err
		}
	}

	return db, nil
}

// isFresh reports whether path is missing or zero bytes long.
func isFresh(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.Size() == 0, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
