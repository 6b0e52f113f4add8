package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// ExactArgs is cobra.ExactArgs reporting a usage exit code.
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return Exit(ExitUsage, err)
		}
		return nil
	}
}

// ParseID reads a positive row ID from a positional argument.
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, Exit(ExitUsage, fmt.Errorf("invalid ID %q: must be a positive integer", arg))
	}
	return id, nil
}

// Open returns the CLI for cmd, printing the failure under formatter.
// Callers must Close the result.
func Open(cmd *cobra.Command, formatter *OutputFormatter) (*CLI, error) {
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, formatter.Fail("INITIALIZATION_ERROR", ExitError, err, "")
	}
	return cliInstance, nil
}
