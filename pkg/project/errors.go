package project

import "errors"

// Error definitions for project package.
var (
	// ErrRootNotFound is returned when no parent directory contains the project manifest.
	ErrRootNotFound = errors.New("could not find project root")
)
