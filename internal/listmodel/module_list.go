package listmodel

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tasques/internal/models"
)

// ModuleService is what ModuleList needs from the module service.
type ModuleService interface {
	GetAllModules(ctx context.Context) ([]*models.Module, error)
	CreateModule(ctx context.Context, name string) (*models.Module, error)
	RenameModule(ctx context.Context, id int, name string) error
	DeleteModule(ctx context.Context, id int) error
}

// ModuleList is the ordered projection of the module table (PK ascending).
type ModuleList struct {
	svc  ModuleService
	rows []*models.Module
}

// NewModuleList creates an empty list; call Refresh to load it.
func NewModuleList(svc ModuleService) *ModuleList {
	return &ModuleList{svc: svc}
}

// Refresh reloads every module from the store.
func (l *ModuleList) Refresh(ctx context.Context) error {
	rows, err := l.svc.GetAllModules(ctx)
	if err != nil {
		return fmt.Errorf("failed to load modules: %w", err)
	}
	l.rows = rows
	return nil
}

// Rows returns the loaded modules. The slice must not be modified.
func (l *ModuleList) Rows() []*models.Module {
	return l.rows
}

// Len returns the number of loaded modules.
func (l *ModuleList) Len() int {
	return len(l.rows)
}

// At returns the module at index, or nil when out of range.
func (l *ModuleList) At(index int) *models.Module {
	if index < 0 || index >= len(l.rows) {
		return nil
	}
	return l.rows[index]
}

// IndexOf returns the position of the module with id, or -1.
func (l *ModuleList) IndexOf(id int) int {
	for i, m := range l.rows {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// Insert creates a module and returns the index of the new row.
// On failure nothing is reloaded, so the rows stay as they were.
func (l *ModuleList) Insert(ctx context.Context, name string) (int, error) {
	module, err := l.svc.CreateModule(ctx, name)
	if err != nil {
		return -1, err
	}
	if err := l.Refresh(ctx); err != nil {
		return -1, err
	}
	return l.IndexOf(module.ID), nil
}

// Delete removes the module at index together with its tasks.
func (l *ModuleList) Delete(ctx context.Context, index int) error {
	module := l.At(index)
	if module == nil {
		return ErrNoSelection
	}
	if err := l.svc.DeleteModule(ctx, module.ID); err != nil {
		return err
	}
	return l.Refresh(ctx)
}

// Rename writes a new name for the module at index; the write commits on its own.
func (l *ModuleList) Rename(ctx context.Context, index int, name string) error {
	module := l.At(index)
	if module == nil {
		return ErrNoSelection
	}
	if err := l.svc.RenameModule(ctx, module.ID, name); err != nil {
		return err
	}
	return l.Refresh(ctx)
}
