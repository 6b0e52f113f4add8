package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasques/internal/cli"
	moduleservice "github.com/thenoetrevino/tasques/internal/services/module"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks of a module",
		Args:  cli.ExactArgs(0),
		RunE:  runList,
	}

	cmd.Flags().Int("module", 0, "Module ID (required)")
	if err := cmd.MarkFlagRequired("module"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	moduleID, _ := cmd.Flags().GetInt("module")

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	module, err := cliInstance.App.ModuleService.GetModuleByID(ctx, moduleID)
	if errors.Is(err, moduleservice.ErrModuleNotFound) || errors.Is(err, moduleservice.ErrInvalidModuleID) {
		return formatter.Fail("MODULE_NOT_FOUND", cli.ExitNotFound,
			fmt.Errorf("module %d not found", moduleID),
			"Use 'tasques module list' to see available modules")
	}
	if err != nil {
		return formatter.Fail("MODULE_FETCH_ERROR", cli.ExitError, err, "")
	}

	tasks, err := cliInstance.App.TaskService.GetTasksByModule(ctx, moduleID)
	if err != nil {
		return formatter.Fail("TASK_FETCH_ERROR", cli.ExitError, err, "")
	}

	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"module":  module,
			"tasks":   tasks,
		})
	}

	if len(tasks) == 0 {
		fmt.Printf("No tasks in module '%s'\n", module.Name)
		return nil
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s: %d tasks", module.Name, len(tasks))))
	fmt.Println()
	for _, t := range tasks {
		fmt.Println(formatTask(t))
	}

	return nil
}
