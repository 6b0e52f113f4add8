package listmodel

import (
	"context"

	"github.com/thenoetrevino/tasques/internal/models"
)

// Coordinator keeps the module selection and the task filter in step.
// The filter always equals the selected module's id; with no modules the
// selection is -1 and the filter is cleared.
type Coordinator struct {
	Modules  *ModuleList
	Tasks    *TaskList
	selected int
}

// NewCoordinator wires the two lists together. Call Sync before use.
func NewCoordinator(modules *ModuleList, tasks *TaskList) *Coordinator {
	return &Coordinator{Modules: modules, Tasks: tasks, selected: -1}
}

// Selected returns the selected module index, or -1.
func (c *Coordinator) Selected() int {
	return c.selected
}

// SelectedModule returns the selected module.
func (c *Coordinator) SelectedModule() (*models.Module, bool) {
	m := c.Modules.At(c.selected)
	return m, m != nil
}

// Sync reloads the modules and repairs the selection: an invalid selection
// falls back to the first row, an empty list clears the filter.
func (c *Coordinator) Sync(ctx context.Context) error {
	if err := c.Modules.Refresh(ctx); err != nil {
		return err
	}
	return c.resync(ctx)
}

func (c *Coordinator) resync(ctx context.Context) error {
	if c.Modules.Len() == 0 {
		c.selected = -1
		c.Tasks.ClearFilter()
		return nil
	}
	index := c.selected
	if c.Modules.At(index) == nil {
		index = 0
	}
	return c.Select(ctx, index)
}

// Select makes index the current module and filters tasks by it.
func (c *Coordinator) Select(ctx context.Context, index int) error {
	m := c.Modules.At(index)
	if m == nil {
		return ErrNoSelection
	}
	c.selected = index
	return c.Tasks.SetFilter(ctx, m.ID)
}

// AddModule creates a module and selects it.
func (c *Coordinator) AddModule(ctx context.Context, name string) error {
	index, err := c.Modules.Insert(ctx, name)
	if err != nil {
		return err
	}
	return c.Select(ctx, index)
}

// DeleteSelectedModule deletes the current module and its tasks, then
// selects the first row again.
func (c *Coordinator) DeleteSelectedModule(ctx context.Context) error {
	if _, ok := c.SelectedModule(); !ok {
		return ErrNoSelection
	}
	if err := c.Modules.Delete(ctx, c.selected); err != nil {
		return err
	}
	c.selected = 0
	return c.resync(ctx)
}

// RenameSelectedModule renames the current module.
func (c *Coordinator) RenameSelectedModule(ctx context.Context, name string) error {
	if _, ok := c.SelectedModule(); !ok {
		return ErrNoSelection
	}
	if err := c.Modules.Rename(ctx, c.selected, name); err != nil {
		return err
	}
	return c.resync(ctx)
}

// AddTask creates a task under the selected module and returns its row.
func (c *Coordinator) AddTask(ctx context.Context, description, deadline string) (int, error) {
	m, ok := c.SelectedModule()
	if !ok {
		return -1, ErrNoSelection
	}
	return c.Tasks.Insert(ctx, description, deadline, m.ID)
}
