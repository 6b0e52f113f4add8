package module

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasques/internal/cli"
)

// ListCmd returns the module list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all modules",
		Long:  "List all modules in insertion order with their task counts.",
		Args:  cli.ExactArgs(0),
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type moduleRow struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Tasks int    `json:"tasks"`
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	modules, err := cliInstance.App.ModuleService.GetAllModules(ctx)
	if err != nil {
		return formatter.Fail("MODULE_FETCH_ERROR", cli.ExitError, err, "")
	}

	if formatter.Quiet {
		for _, m := range modules {
			fmt.Printf("%d\n", m.ID)
		}
		return nil
	}

	rows := make([]moduleRow, 0, len(modules))
	for _, m := range modules {
		count, err := cliInstance.App.ModuleService.GetTaskCount(ctx, m.ID)
		if err != nil {
			return formatter.Fail("MODULE_FETCH_ERROR", cli.ExitError, err, "")
		}
		rows = append(rows, moduleRow{ID: m.ID, Name: m.Name, Tasks: count})
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"modules": rows,
		})
	}

	if len(rows) == 0 {
		fmt.Println("No modules found")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Found %d modules:", len(rows))))
	fmt.Println()
	for _, r := range rows {
		fmt.Printf("  [%d] %s %s\n", r.ID, r.Name, cli.SubtleStyle.Render(fmt.Sprintf("(%d tasks)", r.Tasks)))
	}

	return nil
}
