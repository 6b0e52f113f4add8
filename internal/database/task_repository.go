package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/tasques/internal/models"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db DBTX
}

// NewTaskRepo creates a task repository over a connection or transaction
func NewTaskRepo(db DBTX) *TaskRepo {
	return &TaskRepo{db: db}
}

// WithTx returns a repository that runs its statements inside tx
func (r *TaskRepo) WithTx(tx *sql.Tx) *TaskRepo {
	return &TaskRepo{db: tx}
}

// Each editable column has its own fixed statement; the column name never
// comes from the caller.
var updateTaskFieldQueries = map[models.TaskField]string{
	models.TaskFieldDescription: `UPDATE task SET description = ? WHERE id = ?`,
	models.TaskFieldDeadline:    `UPDATE task SET deadline = ? WHERE id = ?`,
	models.TaskFieldFinished:    `UPDATE task SET finished = ? WHERE id = ?`,
}

const selectTaskColumns = `SELECT id, module_id, description, deadline, finished FROM task`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	task := &models.Task{}
	if err := row.Scan(&task.ID, &task.ModuleID, &task.Description, &task.Deadline, &task.Finished); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTasksByModule retrieves the tasks of one module ordered by ID
func (r *TaskRepo) GetTasksByModule(ctx context.Context, moduleID int) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTaskColumns+` WHERE module_id = ? ORDER BY id`, moduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks for module %d: %w", moduleID, err)
	}
	defer closeRows(rows)

	tasks := make([]*models.Task, 0, 10)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

// GetTaskByID retrieves a task by its ID
func (r *TaskRepo) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	task, err := scanTask(r.db.QueryRowContext(ctx, selectTaskColumns+` WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// CreateTaskRecord inserts a task and reads the stored row back
func (r *TaskRepo) CreateTaskRecord(ctx context.Context, moduleID int, description, deadline string, finished int) (*models.Task, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO task (module_id, description, deadline, finished) VALUES (?, ?, ?, ?)`,
		moduleID, description, deadline, finished,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task for module %d: %w", moduleID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get task ID after insert: %w", err)
	}

	return r.GetTaskByID(ctx, int(id))
}

// UpdateTaskField writes a single column of a task
func (r *TaskRepo) UpdateTaskField(ctx context.Context, id int, field models.TaskField, value any) error {
	query, ok := updateTaskFieldQueries[field]
	if !ok {
		return fmt.Errorf("failed to update task %d: unknown field %d", id, field)
	}

	result, err := r.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("failed to update %s of task %d: %w", field, id, err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to update %s of task %d: %w", field, id, err)
	}
	return nil
}

// DeleteTask removes a task
func (r *TaskRepo) DeleteTask(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM task WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}
