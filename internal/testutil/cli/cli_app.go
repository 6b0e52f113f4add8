package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasques/internal/app"
	tasquescli "github.com/thenoetrevino/tasques/internal/cli"
	"github.com/thenoetrevino/tasques/internal/testutil"
)

// ExecuteCLICommand runs cmd with args against testApp and returns what it
// printed to stdout.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}

	ctx := tasquescli.WithApp(context.Background(), testApp)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})
	return output, executeErr
}
