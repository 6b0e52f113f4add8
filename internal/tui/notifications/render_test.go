package notifications

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/tasques/internal/tui/state"
)

func TestRenderInline(t *testing.T) {
	out := ansi.Strip(RenderInline(state.Notification{Level: state.LevelInfo, Message: "No module selected"}))
	if !strings.Contains(out, "No module selected") {
		t.Errorf("RenderInline() = %q", out)
	}
}

func TestRenderNotice(t *testing.T) {
	out := ansi.Strip(RenderNotice("UNIQUE constraint failed: module.name", 40))
	for _, want := range []string{"Error", "UNIQUE constraint failed", "dismiss"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderNotice() missing %q in %q", want, out)
		}
	}
}
