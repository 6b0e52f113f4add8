package huhforms

import "charm.land/huh/v2"

// CreateModuleForm creates the new-module prompt. The name is not checked
// here; a duplicate is rejected by the store.
func CreateModuleForm(name *string, confirm *bool) *huh.Form {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("Module name").
			Placeholder("e.g. DAM").
			CharLimit(64).
			Value(name),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this module?").
			Affirmative("Accept").
			Negative("Cancel").
			Value(confirm),
	))
	return form.WithKeyMap(CreateKeyMap()).WithShowHelp(false)
}
