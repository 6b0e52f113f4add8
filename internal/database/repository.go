package database

import (
	"context"
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ModuleRepo
	*TaskRepo
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ModuleRepo: NewModuleRepo(db),
		TaskRepo:   NewTaskRepo(db),
		db:         db,
	}
}

// BeginTx starts a new transaction
func (r *Repository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, nil)
}

// WithTx returns a Repository whose statements all run inside tx
func (r *Repository) WithTx(tx *sql.Tx) DataStore {
	return &Repository{
		ModuleRepo: r.ModuleRepo.WithTx(tx),
		TaskRepo:   r.TaskRepo.WithTx(tx),
		db:         r.db,
	}
}
