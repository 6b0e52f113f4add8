package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tasques/internal/config"
)

// keyMap holds the bindings built from the configured key mappings.
type keyMap struct {
	AddTask      key.Binding
	DeleteTask   key.Binding
	EditCell     key.Binding
	ToggleDone   key.Binding
	AddModule    key.Binding
	RenameModule key.Binding
	DeleteModule key.Binding
	SwitchPane   key.Binding
	PrevRow      key.Binding
	NextRow      key.Binding
	PrevColumn   key.Binding
	NextColumn   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		AddTask: key.NewBinding(
			key.WithKeys(km.AddTask),
			key.WithHelp(km.AddTask, "add task"),
		),
		DeleteTask: key.NewBinding(
			key.WithKeys(km.DeleteTask),
			key.WithHelp(km.DeleteTask, "delete task"),
		),
		EditCell: key.NewBinding(
			key.WithKeys(km.EditCell, "enter"),
			key.WithHelp(km.EditCell+"/enter", "edit cell"),
		),
		ToggleDone: key.NewBinding(
			key.WithKeys("space", "select"),
			key.WithHelp("space", "toggle done"),
		),
		AddModule: key.NewBinding(
			key.WithKeys(km.AddModule),
			key.WithHelp(km.AddModule, "add module"),
		),
		RenameModule: key.NewBinding(
			key.WithKeys(km.RenameModule),
			key.WithHelp(km.RenameModule, "rename module"),
		),
		DeleteModule: key.NewBinding(
			key.WithKeys(km.DeleteModule),
			key.WithHelp(km.DeleteModule, "delete module"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys(km.SwitchPane),
			key.WithHelp(km.SwitchPane, "switch pane"),
		),
		PrevRow: key.NewBinding(
			key.WithKeys(km.PrevRow, "up"),
			key.WithHelp(km.PrevRow+"/↑", "up"),
		),
		NextRow: key.NewBinding(
			key.WithKeys(km.NextRow, "down"),
			key.WithHelp(km.NextRow+"/↓", "down"),
		),
		PrevColumn: key.NewBinding(
			key.WithKeys(km.PrevColumn, "left"),
			key.WithHelp(km.PrevColumn+"/←", "prev column"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys(km.NextColumn, "right"),
			key.WithHelp(km.NextColumn+"/→", "next column"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.SwitchPane,
		k.AddModule,
		k.AddTask,
		k.EditCell,
		k.ToggleDone,
		k.Help,
		k.Quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevRow, k.NextRow, k.PrevColumn, k.NextColumn, k.SwitchPane},
		{k.AddModule, k.RenameModule, k.DeleteModule},
		{k.AddTask, k.EditCell, k.ToggleDone, k.DeleteTask},
		{k.Help, k.Quit},
	}
}
