// Package module holds the module business operations and their
// transaction boundaries.
package module

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/tasques/internal/database"
	"github.com/thenoetrevino/tasques/internal/models"
)

// Service defines all module-related business operations
type Service interface {
	// Read operations
	GetAllModules(ctx context.Context) ([]*models.Module, error)
	GetModuleByID(ctx context.Context, id int) (*models.Module, error)
	GetTaskCount(ctx context.Context, id int) (int, error)

	// Write operations
	CreateModule(ctx context.Context, name string) (*models.Module, error)
	RenameModule(ctx context.Context, id int, name string) error
	DeleteModule(ctx context.Context, id int) error
}

type service struct {
	repo database.DataStore
}

// NewService creates a new module service over repo
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// GetAllModules retrieves all modules in insertion order
func (s *service) GetAllModules(ctx context.Context) ([]*models.Module, error) {
	return s.repo.GetAllModules(ctx)
}

// GetModuleByID retrieves a specific module
func (s *service) GetModuleByID(ctx context.Context, id int) (*models.Module, error) {
	if id <= 0 {
		return nil, ErrInvalidModuleID
	}
	module, err := s.repo.GetModuleByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrModuleNotFound
	}
	return module, err
}

// GetTaskCount returns how many tasks a delete would take with it
func (s *service) GetTaskCount(ctx context.Context, id int) (int, error) {
	if id <= 0 {
		return 0, ErrInvalidModuleID
	}
	return s.repo.GetModuleTaskCount(ctx, id)
}

// CreateModule inserts a module inside a transaction. The row is read back
// before commit, so a nil error means the full row is stored.
// Names are not checked here; the UNIQUE constraint decides.
func (s *service) CreateModule(ctx context.Context, name string) (*models.Module, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer database.Rollback(tx)

	module, err := s.repo.WithTx(tx).CreateModuleRecord(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create module: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return module, nil
}

// RenameModule is a single field write and commits on its own
func (s *service) RenameModule(ctx context.Context, id int, name string) error {
	if id <= 0 {
		return ErrInvalidModuleID
	}
	err := s.repo.UpdateModuleName(ctx, id, name)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrModuleNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to rename module: %w", err)
	}
	return nil
}

// DeleteModule removes a module and, through the FK cascade, its tasks
func (s *service) DeleteModule(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidModuleID
	}
	err := s.repo.DeleteModule(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrModuleNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete module: %w", err)
	}
	return nil
}
