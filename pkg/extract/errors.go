package extract

import "errors"

// Error definitions for extract package.
var (
	// ErrTargetNotFound is returned when the target source file does not exist.
	ErrTargetNotFound = errors.New("target file not found")
)
