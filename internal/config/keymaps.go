package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	DeleteTask string `yaml:"delete_task"`
	EditCell   string `yaml:"edit_cell"`

	// Modules
	AddModule    string `yaml:"add_module"`
	RenameModule string `yaml:"rename_module"`
	DeleteModule string `yaml:"delete_module"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	SwitchPane string `yaml:"switch_pane"`
	PrevRow    string `yaml:"prev_row"`
	NextRow    string `yaml:"next_row"`
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:    "a",
		DeleteTask: "d",
		EditCell:   "e",

		AddModule:    "A",
		RenameModule: "r",
		DeleteModule: "D",

		SaveForm: "ctrl+s",

		SwitchPane: "tab",
		PrevRow:    "k",
		NextRow:    "j",
		PrevColumn: "h",
		NextColumn: "l",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}

	fill(&k.AddTask, defaults.AddTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.EditCell, defaults.EditCell)
	fill(&k.AddModule, defaults.AddModule)
	fill(&k.RenameModule, defaults.RenameModule)
	fill(&k.DeleteModule, defaults.DeleteModule)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.SwitchPane, defaults.SwitchPane)
	fill(&k.PrevRow, defaults.PrevRow)
	fill(&k.NextRow, defaults.NextRow)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
