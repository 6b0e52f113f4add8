package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/tasques/internal/models"
)

// ModuleRepo handles all module-related database operations.
// No business logic, no validation - just database operations.
type ModuleRepo struct {
	db DBTX
}

// NewModuleRepo creates a module repository over a connection or transaction
func NewModuleRepo(db DBTX) *ModuleRepo {
	return &ModuleRepo{db: db}
}

// WithTx returns a repository that runs its statements inside tx
func (r *ModuleRepo) WithTx(tx *sql.Tx) *ModuleRepo {
	return &ModuleRepo{db: tx}
}

// GetAllModules retrieves all modules ordered by ID
func (r *ModuleRepo) GetAllModules(ctx context.Context) ([]*models.Module, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM module ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all modules: %w", err)
	}
	defer closeRows(rows)

	modules := make([]*models.Module, 0, 10)
	for rows.Next() {
		module := &models.Module{}
		if err := rows.Scan(&module.ID, &module.Name); err != nil {
			return nil, fmt.Errorf("failed to scan module row: %w", err)
		}
		modules = append(modules, module)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating module rows: %w", err)
	}
	return modules, nil
}

// GetModuleByID retrieves a module by its ID
func (r *ModuleRepo) GetModuleByID(ctx context.Context, id int) (*models.Module, error) {
	module := &models.Module{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM module WHERE id = ?`,
		id,
	).Scan(&module.ID, &module.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get module %d: %w", id, err)
	}
	return module, nil
}

// CreateModuleRecord inserts a module and reads the stored row back
func (r *ModuleRepo) CreateModuleRecord(ctx context.Context, name string) (*models.Module, error) {
	result, err := r.db.ExecContext(ctx, `INSERT INTO module (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to insert module '%s': %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get module ID after insert: %w", err)
	}

	return r.GetModuleByID(ctx, int(id))
}

// UpdateModuleName renames a module
func (r *ModuleRepo) UpdateModuleName(ctx context.Context, id int, name string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE module SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to rename module %d: %w", id, err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to rename module %d: %w", id, err)
	}
	return nil
}

// DeleteModule removes a module; its tasks go with it (ON DELETE CASCADE)
func (r *ModuleRepo) DeleteModule(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM module WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete module %d: %w", id, err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to delete module %d: %w", id, err)
	}
	return nil
}

// GetModuleTaskCount returns the number of tasks owned by a module
func (r *ModuleRepo) GetModuleTaskCount(ctx context.Context, id int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM task WHERE module_id = ?`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks for module %d: %w", id, err)
	}
	return count, nil
}
