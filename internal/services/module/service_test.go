package module

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/tasques/internal/database"
	"github.com/thenoetrevino/tasques/internal/testutil"
)

func TestGetAllModules_Seeded(t *testing.T) {
	t.Parallel()

	svc := NewService(database.NewRepository(testutil.SetupTestDB(t)))

	modules, err := svc.GetAllModules(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(modules) != len(database.SeedModules) {
		t.Fatalf("Expected %d modules, got %d", len(database.SeedModules), len(modules))
	}
	for i, name := range database.SeedModules {
		if modules[i].Name != name {
			t.Errorf("Module %d = %q, want %q", i, modules[i].Name, name)
		}
	}
}

func TestCreateModule(t *testing.T) {
	t.Parallel()

	svc := NewService(database.NewRepository(testutil.SetupTestDB(t)))

	module, err := svc.CreateModule(context.Background(), "IPE")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if module.ID == 0 {
		t.Error("Expected module ID to be set")
	}
	if module.Name != "IPE" {
		t.Errorf("Expected name 'IPE', got '%s'", module.Name)
	}
}

func TestCreateModule_DuplicateRollsBack(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db))

	_, err := svc.CreateModule(context.Background(), "DI")
	if err == nil {
		t.Fatal("Expected duplicate name to fail")
	}
	if !database.IsUniqueViolation(err) {
		t.Errorf("Expected unique violation, got %v", err)
	}

	if n := testutil.CountRows(t, db, "SELECT COUNT(*) FROM module"); n != len(database.SeedModules) {
		t.Errorf("Expected %d modules after rollback, got %d", len(database.SeedModules), n)
	}
}

func TestDeleteModule_Cascades(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db))

	if err := svc.DeleteModule(context.Background(), 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n := testutil.CountRows(t, db, "SELECT COUNT(*) FROM task WHERE module_id = 1"); n != 0 {
		t.Errorf("Expected module 1 tasks gone, %d left", n)
	}
	if n := testutil.CountRows(t, db, "SELECT COUNT(*) FROM task"); n != 1 {
		t.Errorf("Expected 1 remaining task, got %d", n)
	}
}

func TestDeleteModule_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(database.NewRepository(testutil.SetupTestDB(t)))

	if err := svc.DeleteModule(context.Background(), 500); !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("Expected ErrModuleNotFound, got %v", err)
	}
	if err := svc.DeleteModule(context.Background(), 0); !errors.Is(err, ErrInvalidModuleID) {
		t.Errorf("Expected ErrInvalidModuleID, got %v", err)
	}
}

func TestRenameModule(t *testing.T) {
	t.Parallel()

	svc := NewService(database.NewRepository(testutil.SetupTestDB(t)))
	ctx := context.Background()

	if err := svc.RenameModule(ctx, 4, "PSP-II"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	module, err := svc.GetModuleByID(ctx, 4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if module.Name != "PSP-II" {
		t.Errorf("Expected 'PSP-II', got '%s'", module.Name)
	}

	if err := svc.RenameModule(ctx, 404, "X"); !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("Expected ErrModuleNotFound, got %v", err)
	}
}

func TestGetModuleByID_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(database.NewRepository(testutil.SetupTestDB(t)))

	if _, err := svc.GetModuleByID(context.Background(), 77); !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("Expected ErrModuleNotFound, got %v", err)
	}
}

func TestGetTaskCount(t *testing.T) {
	t.Parallel()

	svc := NewService(database.NewRepository(testutil.SetupTestDB(t)))

	count, err := svc.GetTaskCount(context.Background(), 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 task, got %d", count)
	}
}
