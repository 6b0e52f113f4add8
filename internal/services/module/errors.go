package module

import "errors"

// Domain errors for module service
var (
	ErrInvalidModuleID = errors.New("invalid module ID")
	ErrModuleNotFound  = errors.New("module not found")
)
