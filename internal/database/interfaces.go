package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/tasques/internal/models"
)

// ModuleReader defines read operations for modules.
type ModuleReader interface {
	GetAllModules(ctx context.Context) ([]*models.Module, error)
	GetModuleByID(ctx context.Context, id int) (*models.Module, error)
	GetModuleTaskCount(ctx context.Context, id int) (int, error)
}

// ModuleWriter defines write operations for modules.
type ModuleWriter interface {
	CreateModuleRecord(ctx context.Context, name string) (*models.Module, error)
	UpdateModuleName(ctx context.Context, id int, name string) error
	DeleteModule(ctx context.Context, id int) error
}

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTasksByModule(ctx context.Context, moduleID int) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTaskRecord(ctx context.Context, moduleID int, description, deadline string, finished int) (*models.Task, error)
	UpdateTaskField(ctx context.Context, id int, field models.TaskField, value any) error
	DeleteTask(ctx context.Context, id int) error
}

// DataStore is the full set of operations the services depend on.
// WithTx returns a DataStore whose statements run inside tx.
type DataStore interface {
	ModuleReader
	ModuleWriter
	TaskReader
	TaskWriter

	BeginTx(ctx context.Context) (*sql.Tx, error)
	WithTx(tx *sql.Tx) DataStore
}

var _ DataStore = (*Repository)(nil)
