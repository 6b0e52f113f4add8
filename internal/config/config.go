package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/tasques/internal/config/colors"
	"gopkg.in/yaml.v3"
)

const (
	appName = "tasques"

	// DatabaseFileName is the store file created next to the executable.
	DatabaseFileName = "data.sqlite"

	themeFileEnv = "TASQUES_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	DatabasePath string             `yaml:"database_path,omitempty"`
	KeyMappings  KeyMappings        `yaml:"key_mappings"`
	ColorScheme  colors.ColorScheme `yaml:"theme"`

	// ConfirmTaskDelete asks before deleting a task; off, tasks go at once
	ConfirmTaskDelete bool `yaml:"confirm_task_delete,omitempty"`
}

// Default returns a config with every value filled in.
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile merges the theme from TASQUES_THEME_FILE, if set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(themeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		config := &Config{}
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := &Config{}
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	loadThemeFile(&config)
	config.applyDefaults()

	return &config, nil
}

// Path returns the path to the config file
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// DefaultDatabasePath is data.sqlite in the directory of the running
// executable, or in the working directory when that cannot be resolved.
func DefaultDatabasePath() string {
	exe, err := os.Executable()
	if err != nil {
		return DatabaseFileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DatabaseFileName)
}

// ResolveDatabasePath picks the store location: the flag value wins over
// the config file, which wins over the default.
func (c *Config) ResolveDatabasePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if c.DatabasePath != "" {
		return c.DatabasePath
	}
	return DefaultDatabasePath()
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
