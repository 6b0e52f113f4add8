// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/thenoetrevino/tasques/internal/database"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the schema and the seeded
// example rows. The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// every pooled connection would get its own in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if err := database.Bootstrap(context.Background(), db); err != nil {
		t.Fatalf("Failed to bootstrap database: %v", err)
	}
	return db
}

// SetupEmptyTestDB is SetupTestDB without any module or task rows.
func SetupEmptyTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db := SetupTestDB(t)
	if _, err := db.ExecContext(context.Background(), "DELETE FROM module"); err != nil {
		t.Fatalf("Failed to clear modules: %v", err)
	}
	return db
}

// CountRows runs a COUNT query and returns its result.
func CountRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("CountRows(%q): %v", query, err)
	}
	return n
}

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = oldStdout
	return <-outC
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return result
}
