package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tasques/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themeFile := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  edit: "#0000FF"
`)
	if err := os.WriteFile(themeFile, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(themeFileEnv, themeFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.Edit != "#0000FF" {
		t.Errorf("Expected edit to be #0000FF, got %s", cfg.ColorScheme.Edit)
	}
	if cfg.ColorScheme.Delete == "" {
		t.Error("Expected delete to have default value")
	}
}

func TestApplyDefaultsUsesPreset(t *testing.T) {
	scheme := colors.ColorScheme{Preset: "monochrome", Delete: "#123456"}
	scheme.ApplyDefaults()

	mono := colors.Monochrome()
	if scheme.Accent != mono.Accent {
		t.Errorf("Accent = %s, want %s", scheme.Accent, mono.Accent)
	}
	if scheme.Delete != "#123456" {
		t.Errorf("custom Delete overwritten: %s", scheme.Delete)
	}
}

func TestUnknownPresetFallsBackToDefault(t *testing.T) {
	scheme := colors.ColorScheme{Preset: "neon"}
	scheme.ApplyDefaults()

	if scheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Accent = %s, want default", scheme.Accent)
	}
	if MonochromeColorScheme().Accent != "#FFFFFF" {
		t.Error("monochrome accent should be white")
	}
}
