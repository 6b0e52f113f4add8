// Package models holds the domain types shared by the store, the list
// adapters and the user interfaces.
package models

// Module is a school module; it owns zero or more tasks.
// Deleting a module deletes all of its tasks (FK cascade).
type Module struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetID returns the module's primary key.
// Used by the CLI quiet output mode.
func (m *Module) GetID() int {
	return m.ID
}
