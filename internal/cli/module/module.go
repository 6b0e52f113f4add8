// Package module implements the `tasques module` subcommands.
package module

import (
	"github.com/spf13/cobra"
)

// ModuleCmd returns the module parent command
func ModuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module",
		Short: "Manage modules",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
