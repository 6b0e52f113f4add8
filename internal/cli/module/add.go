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
)

// AddCmd returns the module add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a module",
		Long: `Add a module. Names must be unique.

Examples:
  tasques module add DAW

  # Quiet mode for bash capture
  MODULE_ID=$(tasques module add DAW --quiet)
`,
		Args: cli.ExactArgs(1),
		RunE: runAdd,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	name := args[0]

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	module, err := cliInstance.App.ModuleService.CreateModule(ctx, name)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return formatter.Fail("DUPLICATE_MODULE", cli.ExitValidation,
				errors.New(database.NativeMessage(err)),
				"Use 'tasques module list' to see existing names")
		}
		return formatter.Fail("MODULE_CREATE_ERROR", cli.ExitError, err, "")
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", module.ID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"module":  module,
		})
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Module '%s' created (ID: %d)", module.Name, module.ID)))
	return nil
}
