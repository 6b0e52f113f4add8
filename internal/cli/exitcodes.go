package cli

import "errors"

// Exit codes for CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: store errors and anything that fits no category below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments or flags, non-numeric IDs.
	ExitUsage = 2

	// ExitNotFound indicates a requested module or task does not exist.
	ExitNotFound = 3

	// ExitValidation indicates input that fails validation rules.
	// Use for: malformed deadlines, duplicate module names, deleting a
	// module that still has tasks without --force.
	ExitValidation = 5
)

// CommandError carries the process exit code for a failed command.
// The message has already been printed by the OutputFormatter.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code.
func Exit(code int, err error) error {
	return &CommandError{Code: code, Err: err}
}

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
