// Package listmodel keeps the in-memory projections the user interfaces
// render: the ordered module list, the task list filtered by module, the
// per-column read/write rules of the task grid, and the coordinator that
// keeps the task filter in step with the selected module.
//
// Every mutation goes through the services and is followed by a reload, so
// the rows held here always mirror what the store committed.
package listmodel

import "errors"

// ErrNoSelection is returned when an operation needs a row that does not exist.
var ErrNoSelection = errors.New("no row selected")
