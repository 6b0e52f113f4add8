// Package task implements the `tasques task` subcommands.
package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasques/internal/cli"
	"github.com/thenoetrevino/tasques/internal/models"
	taskservice "github.com/thenoetrevino/tasques/internal/services/task"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(UndoneCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// formatTask renders one task line for human output.
func formatTask(t *models.Task) string {
	mark := "[ ]"
	if t.IsFinished() {
		mark = cli.CheckedStyle.Render("[x]")
	}
	description := t.Description
	if description == "" {
		description = cli.SubtleStyle.Render("(no description)")
	}
	return fmt.Sprintf("  %s [%d] %s  %s", mark, t.ID, description, cli.SubtleStyle.Render(t.Deadline))
}

// failTaskWrite maps a task service error to output and exit code.
func failTaskWrite(formatter *cli.OutputFormatter, id int, err error) error {
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return formatter.Fail("TASK_NOT_FOUND", cli.ExitNotFound,
			fmt.Errorf("task %d not found", id),
			"Use 'tasques task list --module <id>' to see available tasks")
	case errors.Is(err, models.ErrInvalidDeadline):
		return formatter.Fail("INVALID_DEADLINE", cli.ExitValidation, err,
			"Deadlines are written dd/MM/yyyy, e.g. 05/03/2024")
	default:
		return formatter.Fail("TASK_UPDATE_ERROR", cli.ExitError, err, "")
	}
}
