package models

import "errors"

// ErrInvalidDeadline indicates deadline text that is not a dd/MM/yyyy date.
var ErrInvalidDeadline = errors.New("deadline must be a dd/MM/yyyy date")
