package listmodel

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tasques/internal/models"
	taskservice "github.com/thenoetrevino/tasques/internal/services/task"
)

// TaskService is what TaskList needs from the task service.
type TaskService interface {
	GetTasksByModule(ctx context.Context, moduleID int) ([]*models.Task, error)
	CreateTask(ctx context.Context, req taskservice.CreateTaskRequest) (*models.Task, error)
	UpdateTaskField(ctx context.Context, id int, field models.TaskField, value any) error
	DeleteTask(ctx context.Context, id int) error
}

// TaskList is the projection of the task table restricted to one module.
// Without a filter it holds no rows.
type TaskList struct {
	svc      TaskService
	moduleID int
	filtered bool
	rows     []*models.Task
}

// NewTaskList creates an unfiltered, empty task list.
func NewTaskList(svc TaskService) *TaskList {
	return &TaskList{svc: svc}
}

// SetFilter restricts the list to moduleID and reloads it immediately.
func (l *TaskList) SetFilter(ctx context.Context, moduleID int) error {
	l.moduleID = moduleID
	l.filtered = true
	return l.Refresh(ctx)
}

// ClearFilter drops the filter and every row.
func (l *TaskList) ClearFilter() {
	l.moduleID = 0
	l.filtered = false
	l.rows = nil
}

// Filter returns the module the list is restricted to.
func (l *TaskList) Filter() (int, bool) {
	return l.moduleID, l.filtered
}

// Refresh re-queries the rows for the current filter.
func (l *TaskList) Refresh(ctx context.Context) error {
	if !l.filtered {
		l.rows = nil
		return nil
	}
	rows, err := l.svc.GetTasksByModule(ctx, l.moduleID)
	if err != nil {
		return fmt.Errorf("failed to load tasks for module %d: %w", l.moduleID, err)
	}
	l.rows = rows
	return nil
}

// Rows returns the loaded tasks. The slice must not be modified.
func (l *TaskList) Rows() []*models.Task {
	return l.rows
}

// Len returns the number of loaded tasks.
func (l *TaskList) Len() int {
	return len(l.rows)
}

// At returns the task at index, or nil when out of range.
func (l *TaskList) At(index int) *models.Task {
	if index < 0 || index >= len(l.rows) {
		return nil
	}
	return l.rows[index]
}

// IndexOf returns the position of the task with id, or -1.
func (l *TaskList) IndexOf(id int) int {
	for i, t := range l.rows {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Insert creates an unfinished task under moduleID and reloads.
// It returns the index of the new row, or -1 when the new row is outside
// the current filter.
func (l *TaskList) Insert(ctx context.Context, description, deadline string, moduleID int) (int, error) {
	task, err := l.svc.CreateTask(ctx, taskservice.CreateTaskRequest{
		ModuleID:    moduleID,
		Description: description,
		Deadline:    deadline,
	})
	if err != nil {
		return -1, err
	}
	if err := l.Refresh(ctx); err != nil {
		return -1, err
	}
	return l.IndexOf(task.ID), nil
}

// Delete removes the task at index and reloads.
func (l *TaskList) Delete(ctx context.Context, index int) error {
	task := l.At(index)
	if task == nil {
		return ErrNoSelection
	}
	if err := l.svc.DeleteTask(ctx, task.ID); err != nil {
		return err
	}
	return l.Refresh(ctx)
}

// Columns returns the visible column descriptors.
func (l *TaskList) Columns() []Column {
	return TaskColumns
}

func column(col int) (Column, bool) {
	if col < 0 || col >= len(TaskColumns) {
		return Column{}, false
	}
	return TaskColumns[col], true
}

// Value reads the typed value of one cell.
func (l *TaskList) Value(row, col int) (CellValue, bool) {
	task := l.At(row)
	c, ok := column(col)
	if task == nil || !ok {
		return CellValue{}, false
	}
	return c.Read(task), true
}

// Display returns the text drawn for one cell; empty when out of range.
func (l *TaskList) Display(row, col int) string {
	task := l.At(row)
	c, ok := column(col)
	if task == nil || !ok {
		return ""
	}
	return c.Display(task)
}

// EditorKind returns the edit surface for a column.
func (l *TaskList) EditorKind(col int) EditorKind {
	c, ok := column(col)
	if !ok {
		return EditorNone
	}
	return c.Editor()
}

// Commit writes one cell back to the store as its own write and reloads.
func (l *TaskList) Commit(ctx context.Context, row, col int, value CellValue) error {
	task := l.At(row)
	if task == nil {
		return ErrNoSelection
	}
	c, ok := column(col)
	if !ok {
		return fmt.Errorf("%w: column %d", ErrNoSelection, col)
	}
	stored, err := c.Stored(value)
	if err != nil {
		return err
	}
	if err := l.svc.UpdateTaskField(ctx, task.ID, c.Field, stored); err != nil {
		return err
	}
	return l.Refresh(ctx)
}

// HandleEvent lets a check cell react to ev. It reports whether the
// event toggled the cell; any other combination writes nothing.
func (l *TaskList) HandleEvent(ctx context.Context, row, col int, ev Event, cell Rect) (bool, error) {
	task := l.At(row)
	c, ok := column(col)
	if task == nil || !ok || !c.Toggles(ev, cell) {
		return false, nil
	}
	current := c.Read(task)
	if err := l.Commit(ctx, row, col, BoolValue(!current.Checked)); err != nil {
		return false, err
	}
	return true, nil
}
