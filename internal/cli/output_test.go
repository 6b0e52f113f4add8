package cli

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasques/internal/models"
	"github.com/thenoetrevino/tasques/internal/testutil"
)

// captureStderr points os.Stderr at the pipe testutil.CaptureOutput reads.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldErr := os.Stderr
	defer func() { os.Stderr = oldErr }()

	return testutil.CaptureOutput(t, func() {
		os.Stderr = os.Stdout
		fn()
	})
}

func TestOutputFormatter_Success(t *testing.T) {
	module := &models.Module{ID: 7, Name: "DAW"}

	tests := []struct {
		name      string
		formatter OutputFormatter
		data      any
		want      string
	}{
		{"quiet prints the ID", OutputFormatter{Quiet: true}, module, "7\n"},
		{"quiet without ID prints nothing", OutputFormatter{Quiet: true}, "text", ""},
		{"quiet wins over json", OutputFormatter{Quiet: true, JSON: true}, module, "7\n"},
		{"json envelope", OutputFormatter{JSON: true}, module, `{"data":{"id":7,"name":"DAW"},"success":true}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := testutil.CaptureOutput(t, func() {
				if err := tt.formatter.Success(tt.data); err != nil {
					t.Errorf("Success() error = %v", err)
				}
			})
			if output != tt.want {
				t.Errorf("Success() printed %q, want %q", output, tt.want)
			}
		})
	}
}

func TestOutputFormatter_ErrorJSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	output := testutil.CaptureOutput(t, func() {
		_ = f.ErrorWithSuggestion("MODULE_NOT_FOUND", "module 3 not found", "list them")
	})

	result := testutil.ParseJSON(t, output)
	if result["success"] != false {
		t.Errorf("success = %v, want false", result["success"])
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "MODULE_NOT_FOUND" || errData["message"] != "module 3 not found" || errData["suggestion"] != "list them" {
		t.Errorf("unexpected error payload: %v", errData)
	}
}

func TestOutputFormatter_ErrorHuman(t *testing.T) {
	f := &OutputFormatter{}
	output := captureStderr(t, func() {
		_ = f.ErrorWithSuggestion("X", "boom", "try again")
	})
	if !strings.Contains(output, "boom") || !strings.Contains(output, "try again") {
		t.Errorf("stderr = %q, want message and suggestion", output)
	}
}

func TestFail_CarriesExitCode(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	cause := errors.New("module 3 not found")

	var err error
	testutil.CaptureOutput(t, func() {
		err = f.Fail("MODULE_NOT_FOUND", ExitNotFound, cause, "")
	})

	if ExitCode(err) != ExitNotFound {
		t.Errorf("ExitCode() = %d, want %d", ExitCode(err), ExitNotFound)
	}
	if !errors.Is(err, cause) {
		t.Error("Fail() should wrap the cause")
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != ExitSuccess {
		t.Errorf("ExitCode(nil) = %d", got)
	}
	if got := ExitCode(errors.New("plain")); got != ExitError {
		t.Errorf("ExitCode(plain) = %d, want %d", got, ExitError)
	}
	if got := ExitCode(Exit(ExitValidation, errors.New("x"))); got != ExitValidation {
		t.Errorf("ExitCode(validation) = %d", got)
	}
}

func TestParseID(t *testing.T) {
	for _, arg := range []string{"0", "-1", "abc", ""} {
		if _, err := ParseID(arg); ExitCode(err) != ExitUsage {
			t.Errorf("ParseID(%q) exit = %d, want %d", arg, ExitCode(err), ExitUsage)
		}
	}
	if id, err := ParseID("12"); err != nil || id != 12 {
		t.Errorf("ParseID(12) = %d, %v", id, err)
	}
}

func TestExactArgs(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	if err := ExactArgs(1)(cmd, nil); ExitCode(err) != ExitUsage {
		t.Errorf("ExactArgs(1)(nil) exit = %d, want %d", ExitCode(err), ExitUsage)
	}
	if err := ExactArgs(1)(cmd, []string{"a"}); err != nil {
		t.Errorf("ExactArgs(1)(a) = %v", err)
	}
}

func TestGetCLIFromContext_NoPath(t *testing.T) {
	if _, err := GetCLIFromContext(context.Background()); err == nil {
		t.Error("expected an error without app or path")
	}
}
