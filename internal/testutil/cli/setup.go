// Package cli holds helpers for running cobra commands against a test store.
// It lives apart from testutil so service tests can import testutil without
// pulling in the app container.
package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tasques/internal/app"
	"github.com/thenoetrevino/tasques/internal/testutil"
)

// SetupCLITest creates a seeded in-memory DB and returns both the DB and
// an App over it.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db)
}
