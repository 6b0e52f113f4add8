package task

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasques/internal/cli"
	taskservice "github.com/thenoetrevino/tasques/internal/services/task"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task's description or deadline",
		Long: `Change a task's description, deadline or both in one transaction.

Examples:
  tasques task edit 4 --deadline 12/06/2024
  tasques task edit 4 --description ""
`,
		Args: cli.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("deadline", "", "New deadline as dd/MM/yyyy")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	id, err := cli.ParseID(args[0])
	if err != nil {
		return formatter.Fail("INVALID_ID", cli.ExitUsage, err, "")
	}

	req := taskservice.UpdateTaskRequest{ID: id}
	// Changed, not the value, decides: an empty description is a valid edit
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}
	if cmd.Flags().Changed("deadline") {
		deadline, _ := cmd.Flags().GetString("deadline")
		req.Deadline = &deadline
	}
	if req.Description == nil && req.Deadline == nil {
		return formatter.Fail("NO_CHANGES", cli.ExitUsage,
			fmt.Errorf("nothing to change for task %d", id),
			"Pass --description and/or --deadline")
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

	svc := cliInstance.App.TaskService
	if err := svc.UpdateTask(ctx, req); err != nil {
		return failTaskWrite(formatter, id, err)
	}
	task, err := svc.GetTaskByID(ctx, id)
	if err != nil {
		return failTaskWrite(formatter, id, err)
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

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Task %d updated", id)))
	fmt.Println(formatTask(task))
	return nil
}
