package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrTargetFileEmpty         = errors.New("target_file cannot be empty")
	ErrSearchDirsEmpty         = errors.New("search_dirs cannot be empty")
	ErrInvalidFileExtension    = errors.New("file_extension must start with a dot")
	ErrManifestFileEmpty       = errors.New("manifest_file cannot be empty")
	ErrInvalidMaxFunctionLines = errors.New("max_function_lines must be positive")
)
