package module

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

// DeleteCmd returns the module delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a module and its tasks",
		Long: `Delete a module. Its tasks are deleted with it, so a module that
still has tasks is only deleted with --force.`,
		Args: cli.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("force", false, "Delete even if the module has tasks")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	force, _ := cmd.Flags().GetBool("force")

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

	svc := cliInstance.App.ModuleService
	module, err := svc.GetModuleByID(ctx, id)
	if errors.Is(err, moduleservice.ErrModuleNotFound) {
		return formatter.Fail("MODULE_NOT_FOUND", cli.ExitNotFound,
			fmt.Errorf("module %d not found", id),
			"Use 'tasques module list' to see available modules")
	}
	if err != nil {
		return formatter.Fail("MODULE_FETCH_ERROR", cli.ExitError, err, "")
	}

	count, err := svc.GetTaskCount(ctx, id)
	if err != nil {
		return formatter.Fail("MODULE_FETCH_ERROR", cli.ExitError, err, "")
	}
	if count > 0 && !force {
		return formatter.Fail("MODULE_HAS_TASKS", cli.ExitValidation,
			fmt.Errorf("module '%s' has %d task(s)", module.Name, count),
			"Pass --force to delete the module together with its tasks")
	}

	if err := svc.DeleteModule(ctx, id); err != nil {
		return formatter.Fail("MODULE_DELETE_ERROR", cli.ExitError, err, "")
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":       true,
			"module_id":     id,
			"tasks_deleted": count,
		})
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Module '%s' (ID: %d) deleted with %d task(s)", module.Name, id, count)))
	return nil
}
