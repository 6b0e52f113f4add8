package module

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasques/internal/cli"
	"github.com/thenoetrevino/tasques/internal/database"
	moduleservice "github.com/thenoetrevino/tasques/internal/services/module"
)

// RenameCmd returns the module rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a module",
		Args:  cli.ExactArgs(2),
		RunE:  runRename,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	id, err := cli.ParseID(args[0])
	if err != nil {
		return formatter.Fail("INVALID_ID", cli.ExitUsage, err, "")
	}
	name := args[1]

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	err = cliInstance.App.ModuleService.RenameModule(ctx, id, name)
	switch {
	case errors.Is(err, moduleservice.ErrModuleNotFound):
		return formatter.Fail("MODULE_NOT_FOUND", cli.ExitNotFound,
			fmt.Errorf("module %d not found", id),
			"Use 'tasques module list' to see available modules")
	case database.IsUniqueViolation(err):
		return formatter.Fail("DUPLICATE_MODULE", cli.ExitValidation,
			errors.New(database.NativeMessage(err)), "")
	case err != nil:
		return formatter.Fail("MODULE_RENAME_ERROR", cli.ExitError, err, "")
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", id)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"module":  map[string]any{"id": id, "name": name},
		})
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Module %d renamed to '%s'", id, name)))
	return nil
}
