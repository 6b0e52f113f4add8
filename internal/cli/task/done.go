package task

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasques/internal/cli"
	"github.com/thenoetrevino/tasques/internal/models"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	return finishedCmd("done", "Mark a task as finished", true)
}

// UndoneCmd returns the task undone subcommand
func UndoneCmd() *cobra.Command {
	return finishedCmd("undone", "Mark a task as not finished", false)
}

func finishedCmd(use, short string, finished bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetFinished(cmd, args, finished)
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSetFinished(cmd *cobra.Command, args []string, finished bool) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	id, err := cli.ParseID(args[0])
	if err != nil {
		return formatter.Fail("INVALID_ID", cli.ExitUsage, err, "")
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
	err = svc.UpdateTaskField(ctx, id, models.TaskFieldFinished, models.FinishedFromBool(finished))
	if err != nil {
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

	fmt.Println(formatTask(task))
	return nil
}
