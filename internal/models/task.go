package models

// Task represents a single task owned by a module.
// Deadline is kept as the stored dd/MM/yyyy text and Finished as the stored
// integer; conversion to richer types is done by the column descriptors.
type Task struct {
	ID          int    `json:"id"`
	ModuleID    int    `json:"module_id"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Finished    int    `json:"finished"`
}

// GetID returns the task's primary key.
func (t *Task) GetID() int {
	return t.ID
}

// IsFinished reports whether the stored finished flag is set.
func (t *Task) IsFinished() bool {
	return FinishedToBool(t.Finished)
}

// TaskField identifies a single editable task column.
type TaskField int

const (
	TaskFieldDescription TaskField = iota
	TaskFieldDeadline
	TaskFieldFinished
)

// String returns the column name used by the store.
func (f TaskField) String() string {
	switch f {
	case TaskFieldDescription:
		return "description"
	case TaskFieldDeadline:
		return "deadline"
	case TaskFieldFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// FinishedToBool converts the stored integer to a check state.
// Any nonzero value counts as checked.
func FinishedToBool(v int) bool {
	return v != 0
}

// FinishedFromBool converts a check state to the stored integer (1 or 0).
func FinishedFromBool(checked bool) int {
	if checked {
		return 1
	}
	return 0
}
