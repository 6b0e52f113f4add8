package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasques/internal/cli"
	"github.com/thenoetrevino/tasques/internal/testutil"
	clitest "github.com/thenoetrevino/tasques/internal/testutil/cli"
)

func TestListModules(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	t.Run("human output lists seeded modules with counts", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Found 9 modules")
		assert.Contains(t, output, "[1] DI")
		assert.Contains(t, output, "(2 tasks)")
		assert.Contains(t, output, "[9] FCT")
	})

	t.Run("quiet prints IDs only", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "1\n2\n3\n4\n5\n6\n7\n8\n9\n", output)
	})

	t.Run("json", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		modules := result["modules"].([]any)
		require.Len(t, modules, 9)
		first := modules[0].(map[string]any)
		assert.Equal(t, "DI", first["name"])
		assert.Equal(t, float64(2), first["tasks"])
	})
}

func TestAddModule(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"DAW", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "10\n", output)
	assert.Equal(t, 1, testutil.CountRows(t, db, "SELECT COUNT(*) FROM module WHERE name = ?", "DAW"))
}

func TestAddModule_Duplicate(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"DI", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "DUPLICATE_MODULE", result["error"].(map[string]any)["code"])

	assert.Equal(t, 9, testutil.CountRows(t, db, "SELECT COUNT(*) FROM module"))
}

func TestAddModule_MissingName(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), nil)
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestRenameModule(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"renames", []string{"3", "PMDM-II"}, cli.ExitSuccess},
		{"unknown id", []string{"99", "X"}, cli.ExitNotFound},
		{"non numeric id", []string{"abc", "X"}, cli.ExitUsage},
		{"duplicate name", []string{"4", "DI"}, cli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, app, RenameCmd(), tt.args)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
		})
	}

	assert.Equal(t, 1, testutil.CountRows(t, db, "SELECT COUNT(*) FROM module WHERE id = 3 AND name = 'PMDM-II'"))
	assert.Equal(t, 1, testutil.CountRows(t, db, "SELECT COUNT(*) FROM module WHERE id = 4 AND name = 'PSP'"))
}

func TestDeleteModule(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	t.Run("refuses a module with tasks without force", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"1"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		assert.Equal(t, 2, testutil.CountRows(t, db, "SELECT COUNT(*) FROM task WHERE module_id = 1"))
	})

	t.Run("force deletes the module and its tasks", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"1", "--force"})
		require.NoError(t, err)
		assert.Contains(t, output, "deleted with 2 task(s)")
		assert.Equal(t, 0, testutil.CountRows(t, db, "SELECT COUNT(*) FROM module WHERE id = 1"))
		assert.Equal(t, 0, testutil.CountRows(t, db, "SELECT COUNT(*) FROM task WHERE module_id = 1"))
		assert.Equal(t, 1, testutil.CountRows(t, db, "SELECT COUNT(*) FROM task"))
	})

	t.Run("empty module needs no force", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"9", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, 7, testutil.CountRows(t, db, "SELECT COUNT(*) FROM module"))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"42"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}
