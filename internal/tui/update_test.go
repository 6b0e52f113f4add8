package tui

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/tasques/internal/testutil"
	"github.com/thenoetrevino/tasques/internal/tui/state"
)

func TestNavigation_ModuleSelectionFiltersTasks(t *testing.T) {
	m, _ := SetupTestModelWithDB(t)

	m = press(m, "j")
	if m.Lists.Selected() != 1 {
		t.Fatalf("Expected module 1 selected, got %d", m.Lists.Selected())
	}
	if m.Lists.Tasks.Len() != 1 || m.Lists.Tasks.At(0).Description != "Tasca de prova 3" {
		t.Errorf("Expected AD's single task, got %d rows", m.Lists.Tasks.Len())
	}

	m = press(m, "k", "k")
	if m.Lists.Selected() != 0 {
		t.Errorf("Expected selection to stop at the first module, got %d", m.Lists.Selected())
	}
}

func TestNavigation_TaskCursorStaysInGrid(t *testing.T) {
	m, _ := SetupTestModelWithDB(t)
	m = press(m, "tab")
	if m.UiState.Focus() != state.TaskPane {
		t.Fatal("Expected task pane focus after tab")
	}

	m = press(m, "j", "j", "j", "l", "l", "l", "l")
	if m.UiState.SelectedTask() != 1 {
		t.Errorf("Expected row 1, got %d", m.UiState.SelectedTask())
	}
	if m.UiState.SelectedColumn() != 2 {
		t.Errorf("Expected column 2, got %d", m.UiState.SelectedColumn())
	}

	m = press(m, "h", "h", "h")
	if m.UiState.Focus() != state.ModulePane {
		t.Error("Expected h on the first column to move focus to the modules")
	}
}

func TestToggle_SpaceOnDoneColumn(t *testing.T) {
	m, db := SetupTestModelWithDB(t)
	m = press(m, "tab", "l", "l")

	m = press(m, "space")
	if got := finished(t, db, 1); got != 1 {
		t.Fatalf("Expected finished 1 after the first toggle, got %d", got)
	}
	m = press(m, "space")
	if got := finished(t, db, 1); got != 0 {
		t.Errorf("Expected finished 0 after the second toggle, got %d", got)
	}
	if m.Lists.Tasks.At(0).Finished != 0 {
		t.Error("Expected the list row to follow the store")
	}
}

func TestToggle_SpaceOnTextColumnIgnored(t *testing.T) {
	m, db := SetupTestModelWithDB(t)
	m = press(m, "tab", "space")

	if got := finished(t, db, 1); got != 0 {
		t.Errorf("Expected space on the description to change nothing, got %d", got)
	}
	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("Expected NormalMode, got %v", m.UiState.Mode())
	}
}

func TestModuleForm_CompleteSelectsNewModule(t *testing.T) {
	m, db := SetupTestModelWithDB(t)

	m.FormState.FormModuleName = "DAW"
	m.FormState.FormModuleConfirm = true
	m.completeModuleForm()

	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM module"); got != 10 {
		t.Fatalf("Expected 10 modules, got %d", got)
	}
	if m.Lists.Selected() != 9 {
		t.Errorf("Expected the new module to be selected, got %d", m.Lists.Selected())
	}
	if m.Lists.Tasks.Len() != 0 {
		t.Errorf("Expected an empty task grid, got %d rows", m.Lists.Tasks.Len())
	}
}

func TestModuleForm_DuplicateRaisesNotice(t *testing.T) {
	m, db := SetupTestModelWithDB(t)

	m.FormState.FormModuleName = "DI"
	m.FormState.FormModuleConfirm = true
	m.completeModuleForm()

	if m.UiState.Mode() != state.NoticeMode {
		t.Fatalf("Expected NoticeMode, got %v", m.UiState.Mode())
	}
	if !strings.Contains(m.UiState.Notice(), "UNIQUE constraint failed") {
		t.Errorf("Expected the driver's message, got %q", m.UiState.Notice())
	}
	if m.Lists.Modules.Len() != 9 || testutil.CountRows(t, db, "SELECT COUNT(*) FROM module") != 9 {
		t.Error("Expected the module list to be unchanged")
	}

	m = press(m, "enter")
	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("Expected enter to dismiss the notice, got %v", m.UiState.Mode())
	}
}

func TestModuleForm_CancelWritesNothing(t *testing.T) {
	m, db := SetupTestModelWithDB(t)

	m.FormState.FormModuleName = "DAW"
	m.FormState.FormModuleConfirm = false
	m.completeModuleForm()

	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM module"); got != 9 {
		t.Errorf("Expected 9 modules after cancel, got %d", got)
	}
}

func TestModuleForm_EscClosesForm(t *testing.T) {
	m, db := SetupTestModelWithDB(t)

	m = press(m, "A")
	if m.UiState.Mode() != state.ModuleFormMode || m.FormState.ModuleForm == nil {
		t.Fatal("Expected the module form to open")
	}
	m = press(m, "esc")
	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("Expected NormalMode after esc, got %v", m.UiState.Mode())
	}
	if m.FormState.ModuleForm != nil {
		t.Error("Expected the form to be dropped")
	}
	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM module"); got != 9 {
		t.Errorf("Expected no insert, got %d modules", got)
	}
}

func TestTaskForm_OpensWithTomorrowAsDeadline(t *testing.T) {
	m, _ := SetupTestModelWithDB(t)

	m = press(m, "a")
	if m.UiState.Mode() != state.TaskFormMode {
		t.Fatalf("Expected TaskFormMode, got %v", m.UiState.Mode())
	}
	if got := m.FormState.TaskDeadlineText(); got != "05/03/2024" {
		t.Errorf("Expected deadline 05/03/2024, got %q", got)
	}
	if m.FormState.TaskFocus != state.TaskFormDescription {
		t.Error("Expected the description to hold focus")
	}
}

func TestTaskForm_AcceptDefaultStoresTomorrow(t *testing.T) {
	m, db := SetupTestModelWithDB(t)

	m = press(m, "a", "enter")

	if m.UiState.Mode() != state.NormalMode {
		t.Fatalf("Expected NormalMode, got %v: %s", m.UiState.Mode(), m.UiState.Notice())
	}
	if m.Lists.Tasks.Len() != 3 {
		t.Fatalf("Expected 3 tasks, got %d", m.Lists.Tasks.Len())
	}
	if m.UiState.SelectedTask() != 2 || m.UiState.Focus() != state.TaskPane {
		t.Error("Expected the cursor on the new task")
	}
	got := testutil.CountRows(t, db,
		"SELECT COUNT(*) FROM task WHERE module_id = 1 AND description = '' AND deadline = '05/03/2024' AND finished = 0")
	if got != 1 {
		t.Errorf("Expected the stored row, got %d", got)
	}
}

func TestTaskForm_DescriptionAndPickedDeadline(t *testing.T) {
	m, db := SetupTestModelWithDB(t)

	m = press(m, "a", "D", "A", "M")
	// the deadline field only takes picker keys: step the day, then the month
	m = press(m, "tab", "up", "l", "up", "x", "enter")

	got := testutil.CountRows(t, db,
		"SELECT COUNT(*) FROM task WHERE module_id = 1 AND description = 'DAM' AND deadline = '06/04/2024'")
	if got != 1 {
		t.Errorf("Expected DAM due 06/04/2024, got %d rows", got)
	}
}

func TestTaskForm_EscWritesNothing(t *testing.T) {
	m, db := SetupTestModelWithDB(t)

	m = press(m, "a", "x", "tab", "up", "esc")

	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("Expected NormalMode after esc, got %v", m.UiState.Mode())
	}
	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM task"); got != 3 {
		t.Errorf("Expected no insert, got %d tasks", got)
	}
	if m.FormState.TaskDescription.Value() != "" {
		t.Error("Expected the typed description to be dropped")
	}
}

func TestDeleteModule_ConfirmCascadesAndSelectsFirst(t *testing.T) {
	m, db := SetupTestModelWithDB(t)
	m = press(m, "j", "j")

	m = press(m, "D")
	if m.UiState.Mode() != state.DeleteModuleConfirmMode {
		t.Fatalf("Expected DeleteModuleConfirmMode, got %v", m.UiState.Mode())
	}
	m = press(m, "y")

	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM module"); got != 8 {
		t.Errorf("Expected 8 modules, got %d", got)
	}
	if m.Lists.Selected() != 0 || m.Lists.Modules.At(0).Name != "DI" {
		t.Error("Expected the selection to go back to the first row")
	}
	if m.Lists.Tasks.Len() != 2 {
		t.Errorf("Expected DI's tasks to show, got %d", m.Lists.Tasks.Len())
	}
}

func TestDeleteModule_WithTasks(t *testing.T) {
	m, db := SetupTestModelWithDB(t)

	m = press(m, "D")
	if m.UiState.DeleteTaskCount() != 2 {
		t.Errorf("Expected 2 dependent tasks, got %d", m.UiState.DeleteTaskCount())
	}
	m = press(m, "y")

	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM task WHERE module_id = 1"); got != 0 {
		t.Errorf("Expected DI's tasks to be gone, got %d", got)
	}
	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM task"); got != 1 {
		t.Errorf("Expected only AD's task to remain, got %d", got)
	}
	if m.Lists.Modules.At(0).Name != "AD" || m.Lists.Tasks.Len() != 1 {
		t.Error("Expected AD to be selected with its task")
	}
}

func TestDeleteModule_CancelKeepsEverything(t *testing.T) {
	m, db := SetupTestModelWithDB(t)

	for _, cancel := range []string{"n", "esc"} {
		m = press(m, "D", cancel)
		if m.UiState.Mode() != state.NormalMode {
			t.Errorf("Expected %s to cancel, got %v", cancel, m.UiState.Mode())
		}
	}
	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM module"); got != 9 {
		t.Errorf("Expected 9 modules, got %d", got)
	}
}

func TestDeleteTask_Immediate(t *testing.T) {
	m, db := SetupTestModelWithDB(t)
	m = press(m, "tab", "j", "d")

	if m.UiState.Mode() != state.NormalMode {
		t.Fatalf("Expected no dialog, got %v", m.UiState.Mode())
	}
	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM task WHERE id = 2"); got != 0 {
		t.Error("Expected task 2 to be deleted")
	}
	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM task"); got != 2 {
		t.Errorf("Expected only task 2 to go, got %d tasks", got)
	}
	if m.Lists.Tasks.Len() != 1 || m.UiState.SelectedTask() != 0 {
		t.Error("Expected the cursor to be clamped to the remaining row")
	}
}

func TestDeleteTask_Confirm(t *testing.T) {
	m, db := SetupTestModelWithDB(t)
	m.Config.ConfirmTaskDelete = true
	m = press(m, "tab", "j", "d")

	if m.UiState.Mode() != state.DeleteTaskConfirmMode {
		t.Fatalf("Expected DeleteTaskConfirmMode, got %v", m.UiState.Mode())
	}
	m = press(m, "y")

	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM task WHERE id = 2"); got != 0 {
		t.Error("Expected task 2 to be deleted")
	}
	if m.Lists.Tasks.Len() != 1 || m.UiState.SelectedTask() != 0 {
		t.Error("Expected the cursor to be clamped to the remaining row")
	}
}

func TestEmptyStore_KeysRaiseInfo(t *testing.T) {
	m, _ := SetupEmptyTestModel(t)

	if m.Lists.Selected() != -1 {
		t.Fatalf("Expected no selection, got %d", m.Lists.Selected())
	}
	if _, ok := m.Lists.Tasks.Filter(); ok {
		t.Error("Expected the task filter to be cleared")
	}

	for key, want := range map[string]string{"a": "No module selected", "D": "No module to delete", "r": "No module to rename"} {
		m = press(m, key)
		n, ok := m.NotificationState.Last()
		if !ok || n.Level != state.LevelInfo || n.Message != want {
			t.Errorf("%s: expected info %q, got %+v", key, want, n)
		}
		if m.UiState.Mode() != state.NormalMode {
			t.Errorf("%s: expected NormalMode, got %v", key, m.UiState.Mode())
		}
	}

	if !strings.Contains(m.View().Content, "no module selected") {
		t.Error("Expected the empty task pane state")
	}
}

func TestEditCell_DescriptionCommit(t *testing.T) {
	m, db := SetupTestModelWithDB(t)
	m = press(m, "tab", "e")

	if m.UiState.Mode() != state.EditCellMode {
		t.Fatalf("Expected EditCellMode, got %v", m.UiState.Mode())
	}
	if m.EditState.Input.Value() != "Tasca de prova 1" {
		t.Errorf("Expected the editor to start with the cell value, got %q", m.EditState.Input.Value())
	}
	m.EditState.Input.SetValue("Repassar")
	m = press(m, "enter")

	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM task WHERE id = 1 AND description = 'Repassar'"); got != 1 {
		t.Error("Expected the description to be stored")
	}
	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("Expected NormalMode, got %v", m.UiState.Mode())
	}
}

func TestEditCell_EscLeavesCell(t *testing.T) {
	m, db := SetupTestModelWithDB(t)
	m = press(m, "tab", "e")
	m.EditState.Input.SetValue("changed")
	m = press(m, "esc")

	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM task WHERE id = 1 AND description = 'Tasca de prova 1'"); got != 1 {
		t.Error("Expected esc to leave the stored value alone")
	}
}

func TestEditCell_DeadlineRoundTrip(t *testing.T) {
	m, db := SetupTestModelWithDB(t)

	m = press(m, "a", "tab", "down", "enter")

	// cursor is on the new row; move to the deadline column and step a day
	m = press(m, "l", "e")
	if m.UiState.Mode() != state.EditCellMode {
		t.Fatalf("Expected the date picker, got %v", m.UiState.Mode())
	}
	m = press(m, "up", "enter")

	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM task WHERE deadline = '05/03/2024'"); got != 1 {
		t.Fatal("Expected deadline 05/03/2024 to be stored")
	}
	if got := m.Lists.Tasks.Display(m.UiState.SelectedTask(), 1); got != "05/03/2024" {
		t.Errorf("Expected the cell to display 05/03/2024, got %q", got)
	}
}

func TestEditCell_DoneColumnHasNoEditor(t *testing.T) {
	m, _ := SetupTestModelWithDB(t)
	m = press(m, "tab", "l", "l", "e")

	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("Expected no editor on the check column, got %v", m.UiState.Mode())
	}
}

func TestRenameModule(t *testing.T) {
	m, db := SetupTestModelWithDB(t)

	m = press(m, "r")
	if m.UiState.Mode() != state.RenameModuleMode {
		t.Fatalf("Expected RenameModuleMode, got %v", m.UiState.Mode())
	}
	m.EditState.Input.SetValue("DI-II")
	m = press(m, "enter")

	if got := testutil.CountRows(t, db, "SELECT COUNT(*) FROM module WHERE id = 1 AND name = 'DI-II'"); got != 1 {
		t.Error("Expected the module to be renamed")
	}
	if m.Lists.Modules.At(0).Name != "DI-II" {
		t.Error("Expected the list row to follow the store")
	}
}

func TestHelpMode_ToggleAndClose(t *testing.T) {
	m, _ := SetupTestModelWithDB(t)

	m = press(m, "?")
	if m.UiState.Mode() != state.HelpMode {
		t.Fatalf("Expected HelpMode, got %v", m.UiState.Mode())
	}
	// keys behind the overlay do nothing
	m = press(m, "j")
	if m.Lists.Selected() != 0 {
		t.Error("Expected the module selection to stay while help is open")
	}
	m = press(m, "esc")
	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("Expected esc to close help, got %v", m.UiState.Mode())
	}
}
