// Package task holds the task business operations and their transaction
// boundaries.
package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/tasques/internal/database"
	"github.com/thenoetrevino/tasques/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTasksByModule(ctx context.Context, moduleID int) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTaskField(ctx context.Context, id int, field models.TaskField, value any) error
	UpdateTask(ctx context.Context, req UpdateTaskRequest) error
	DeleteTask(ctx context.Context, id int) error
}

// CreateTaskRequest encapsulates data for creating a task.
// New tasks always start unfinished.
type CreateTaskRequest struct {
	ModuleID    int
	Description string
	Deadline    string
}

// UpdateTaskRequest changes several fields at once; nil fields are kept.
type UpdateTaskRequest struct {
	ID          int
	Description *string
	Deadline    *string
	Finished    *bool
}

type service struct {
	repo database.DataStore
}

// NewService creates a new task service over repo
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// GetTasksByModule returns the tasks of a module in insertion order
func (s *service) GetTasksByModule(ctx context.Context, moduleID int) ([]*models.Task, error) {
	if moduleID <= 0 {
		return nil, ErrInvalidModuleID
	}
	return s.repo.GetTasksByModule(ctx, moduleID)
}

// GetTaskByID retrieves a specific task
func (s *service) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	if id <= 0 {
		return nil, ErrInvalidTaskID
	}
	task, err := s.repo.GetTaskByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	return task, err
}

// CreateTask inserts a task inside a transaction and reads it back before
// committing. The description is free text; an empty one is accepted.
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if req.ModuleID <= 0 {
		return nil, ErrInvalidModuleID
	}
	deadline, err := models.NormalizeDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer database.Rollback(tx)

	task, err := s.repo.WithTx(tx).CreateTaskRecord(ctx, req.ModuleID, req.Description, deadline, models.FinishedFromBool(false))
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return task, nil
}

// UpdateTaskField writes one cell and commits immediately
func (s *service) UpdateTaskField(ctx context.Context, id int, field models.TaskField, value any) error {
	if id <= 0 {
		return ErrInvalidTaskID
	}
	value, err := normalizeField(field, value)
	if err != nil {
		return err
	}

	err = s.repo.UpdateTaskField(ctx, id, field, value)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTaskNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// UpdateTask applies every provided field in one transaction
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) error {
	if req.ID <= 0 {
		return ErrInvalidTaskID
	}

	type change struct {
		field models.TaskField
		value any
	}
	var changes []change
	if req.Description != nil {
		changes = append(changes, change{models.TaskFieldDescription, *req.Description})
	}
	if req.Deadline != nil {
		changes = append(changes, change{models.TaskFieldDeadline, *req.Deadline})
	}
	if req.Finished != nil {
		changes = append(changes, change{models.TaskFieldFinished, models.FinishedFromBool(*req.Finished)})
	}
	if len(changes) == 0 {
		return ErrNothingToUpdate
	}

	for i, c := range changes {
		value, err := normalizeField(c.field, c.value)
		if err != nil {
			return err
		}
		changes[i].value = value
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer database.Rollback(tx)

	repoTx := s.repo.WithTx(tx)
	for _, c := range changes {
		err := repoTx.UpdateTaskField(ctx, req.ID, c.field, c.value)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTaskNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteTask removes a task
func (s *service) DeleteTask(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidTaskID
	}
	err := s.repo.DeleteTask(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTaskNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// normalizeField checks that value has the stored shape of field and
// returns it in that shape. Deadlines are rewritten as dd/MM/yyyy.
func normalizeField(field models.TaskField, value any) (any, error) {
	switch field {
	case models.TaskFieldDescription:
		if _, ok := value.(string); !ok {
			return nil, fmt.Errorf("description must be text, got %T", value)
		}
	case models.TaskFieldDeadline:
		text, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", models.ErrInvalidDeadline, value)
		}
		return models.NormalizeDeadline(text)
	case models.TaskFieldFinished:
		v, ok := value.(int)
		if !ok || (v != 0 && v != 1) {
			return nil, ErrInvalidFinished
		}
	default:
		return nil, fmt.Errorf("unknown task field %d", field)
	}
	return value, nil
}
