package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasques/internal/cli"
	"github.com/thenoetrevino/tasques/internal/database"
	"github.com/thenoetrevino/tasques/internal/models"
	taskservice "github.com/thenoetrevino/tasques/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a module",
		Long: `Add an unfinished task to a module.

Examples:
  tasques task add --module 1 --description "Practica 3" --deadline 05/03/2024

  # Deadline defaults to tomorrow
  TASK_ID=$(tasques task add --module 1 --description "Lliurar memòria" --quiet)
`,
		Args: cli.ExactArgs(0),
		RunE: runAdd,
	}

	cmd.Flags().Int("module", 0, "Module ID (required)")
	if err := cmd.MarkFlagRequired("module"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("deadline", "", "Deadline as dd/MM/yyyy (defaults to tomorrow)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	moduleID, _ := cmd.Flags().GetInt("module")
	description, _ := cmd.Flags().GetString("description")
	deadline, _ := cmd.Flags().GetString("deadline")

	if deadline == "" {
		deadline = models.FormatDeadline(models.DefaultDeadline(time.Now()))
	}
	if _, err := models.ParseDeadline(deadline); err != nil {
		return formatter.Fail("INVALID_DEADLINE", cli.ExitValidation, err,
			"Deadlines are written dd/MM/yyyy, e.g. 05/03/2024")
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		ModuleID:    moduleID,
		Description: description,
		Deadline:    deadline,
	})
	if database.IsForeignKeyViolation(err) || errors.Is(err, taskservice.ErrInvalidModuleID) {
		return formatter.Fail("MODULE_NOT_FOUND", cli.ExitNotFound,
			fmt.Errorf("module %d not found", moduleID),
			"Use 'tasques module list' to see available modules or 'tasques module add' to create one")
	}
	if err != nil {
		return formatter.Fail("TASK_CREATE_ERROR", cli.ExitError, err, "")
	}

	module, err := cliInstance.App.ModuleService.GetModuleByID(ctx, moduleID)
	if err != nil {
		return formatter.Fail("MODULE_FETCH_ERROR", cli.ExitError, err, "")
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"task":    task,
		})
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Task created in '%s' (ID: %d)", module.Name, task.ID)))
	fmt.Println(formatTask(task))
	return nil
}
