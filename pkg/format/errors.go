package format

import "errors"

// Error definitions for format package.
var (
	// ErrFormatterUnavailable is returned when the formatter is not installed.
	ErrFormatterUnavailable = errors.New("formatter not available")

	// ErrFormatterFailed is returned when the formatter command fails.
	ErrFormatterFailed = errors.New("formatter execution failed")
)
