// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// Command execution errors.
	ErrCommandFailed = errors.New("command execution failed")
)
