package task

import "errors"

// Domain errors for task service
var (
	// Validation errors
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrInvalidModuleID = errors.New("invalid module ID")
	ErrInvalidFinished = errors.New("finished must be 0 or 1")
	ErrNothingToUpdate = errors.New("no fields to update")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")
)
