package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

const createModuleTable = `
	CREATE TABLE IF NOT EXISTS module (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)
`

const createTaskTable = `
	CREATE TABLE IF NOT EXISTS task (
		id INTEGER PRIMARY KEY,
		module_id INTEGER NOT NULL,
		description TEXT NOT NULL,
		deadline TEXT NOT NULL,
		finished INTEGER NOT NULL,
		CONSTRAINT fk_module
			FOREIGN KEY (module_id)
			REFERENCES module (id)
			ON DELETE CASCADE
	)
`

// SeedModules are the module names inserted into a fresh database, in order.
var SeedModules = []string{"DI", "AD", "PMDM", "PSP", "SGE", "EIE", "ANG-II", "PROJECTE", "FCT"}

// SeedTask is one example task inserted into a fresh database.
type SeedTask struct {
	ModuleID    int
	Description string
	Deadline    string
	Finished    int
}

// SeedTasks reference the first two seeded modules by id.
var SeedTasks = []SeedTask{
	{1, "Tasca de prova 1", "23/01/2023", 0},
	{1, "Tasca de prova 2", "23/01/2023", 1},
	{2, "Tasca de prova 3", "23/01/2023", 1},
}

// Bootstrap creates the schema and seeds the example rows.
// Schema failures are returned wrapped in ErrSchema; seeding failures are
// only logged, a database without examples is still usable.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	if err := createSchema(ctx, db); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}

	if err := seed(ctx, db); err != nil {
		slog.Warn("Failed to seed database", "error", err)
	}
	return nil
}

// createSchema creates the module and task tables
func createSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createModuleTable); err != nil {
		return fmt.Errorf("failed to create module table: %w", err)
	}
	if _, err := db.ExecContext(ctx, createTaskTable); err != nil {
		return fmt.Errorf("failed to create task table: %w", err)
	}
	return nil
}

// seed inserts the example modules and tasks with prepared statements
func seed(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		moduleStmt, err := tx.PrepareContext(ctx, `INSERT INTO module (name) VALUES (?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare module seed: %w", err)
		}
		defer closeStmt(moduleStmt)

		for _, name := range SeedModules {
			if _, err := moduleStmt.ExecContext(ctx, name); err != nil {
				return fmt.Errorf("failed to seed module '%s': %w", name, err)
			}
		}

		taskStmt, err := tx.PrepareContext(ctx,
			`INSERT INTO task (module_id, description, deadline, finished) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare task seed: %w", err)
		}
		defer closeStmt(taskStmt)

		for _, t := range SeedTasks {
			if _, err := taskStmt.ExecContext(ctx, t.ModuleID, t.Description, t.Deadline, t.Finished); err != nil {
				return fmt.Errorf("failed to seed task '%s': %w", t.Description, err)
			}
		}
		return nil
	})
}
