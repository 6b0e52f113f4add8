package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasques/internal/cli"
	"github.com/thenoetrevino/tasques/internal/cli/module"
	"github.com/thenoetrevino/tasques/internal/cli/task"
	"github.com/thenoetrevino/tasques/internal/config"
	"github.com/thenoetrevino/tasques/internal/database"
	"github.com/thenoetrevino/tasques/internal/launcher"
	"github.com/thenoetrevino/tasques/internal/logging"
)

var (
	dbFlag    string
	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "tasques",
	Short: "tasques - modules and their tasks in the terminal",
	Long: `tasques keeps a list of school modules and the tasks of each one in a
local SQLite file. Run without a subcommand to open the TUI.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := launcher.Launch(cmd.Context(), cfg, cfg.ResolveDatabasePath(dbFlag))
		if errors.Is(err, database.ErrConnection) || errors.Is(err, database.ErrSchema) {
			slog.Error("cannot start", "error", err)
		}
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the SQLite file (default: data.sqlite next to the executable)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.Exit(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(module.ModuleCmd())
	rootCmd.AddCommand(task.TaskCmd())
}

// setup runs before every command: file logging, config, and the store
// path the subcommands open.
func setup(cmd *cobra.Command, args []string) error {
	closer, err := logging.Init()
	logCloser = closer
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: file logging disabled:", err)
	}

	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cli.InitStyles(cfg.ColorScheme)

	cmd.SetContext(cli.WithDatabasePath(cmd.Context(), cfg.ResolveDatabasePath(dbFlag)))
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.ExecuteContext(context.Background())
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err == nil {
		return cli.ExitSuccess
	}

	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) {
		// formatter output already covers CommandErrors
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.ExitCode(err)
}
