// Package config provides configuration management functionality for the messenger-cleanup tool.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the cleanup tool configuration. All paths are relative to
// the project root.
type Config struct {
	// TargetFile is the source file whose functions are analyzed and rewritten.
	TargetFile string `yaml:"target_file"`

	// SearchDirs are the directories searched for references to the target's functions.
	SearchDirs []string `yaml:"search_dirs"`

	// FileExtension filters which files are scanned for references.
	FileExtension string `yaml:"file_extension"`

	// DocComment is the single-line documentation comment marker.
	DocComment string `yaml:"doc_comment"`

	// AccessModifiers are the visibility keywords that may precede a function declaration.
	AccessModifiers []string `yaml:"access_modifiers"`

	// Receivers are the variable names functions are commonly called through.
	Receivers []string `yaml:"receivers"`

	// BackupSuffix is appended to the target file name when creating a backup.
	BackupSuffix string `yaml:"backup_suffix"`

	// FormatterCommand is the external formatter invoked after a rewrite.
	FormatterCommand string `yaml:"formatter_command"`

	// ManifestFile is the file whose presence marks the project root.
	ManifestFile string `yaml:"manifest_file"`

	// MaxFunctionLines caps the scan window from a function signature to its end.
	MaxFunctionLines int `yaml:"max_function_lines"`
}

// Manager interface provides configuration management functionality.
type Manager interface {
	LoadConfig(configPath string) (*Config, error)
	DefaultConfig() *Config
}

type realManager struct {
	// No fields needed for basic configuration operations
}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// LoadConfig loads configuration from the specified file path.
func (c *realManager) LoadConfig(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	// Fill unset fields from the defaults so partial configs stay usable
	config.applyDefaults(c.DefaultConfig())

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the default configuration, targeting the Gnusto
// engine's StandardMessenger.swift.
func (c *realManager) DefaultConfig() *Config {
	return &Config{
		TargetFile:       "Sources/GnustoEngine/Messenger/StandardMessenger.swift",
		SearchDirs:       []string{"Sources", "Tests", "Executables"},
		FileExtension:    ".swift",
		DocComment:       "///",
		AccessModifiers:  []string{"open", "public", "private", "internal"},
		Receivers:        []string{"messenger", "msg"},
		BackupSuffix:     ".backup",
		FormatterCommand: "swift-format",
		ManifestFile:     "Package.swift",
		MaxFunctionLines: 50,
	}
}

// applyDefaults fills any unset field from the provided defaults.
func (c *Config) applyDefaults(defaults *Config) {
	if c.TargetFile == "" {
		c.TargetFile = defaults.TargetFile
	}
	if len(c.SearchDirs) == 0 {
		c.SearchDirs = defaults.SearchDirs
	}
	if c.FileExtension == "" {
		c.FileExtension = defaults.FileExtension
	}
	if c.DocComment == "" {
		c.DocComment = defaults.DocComment
	}
	if len(c.AccessModifiers) == 0 {
		c.AccessModifiers = defaults.AccessModifiers
	}
	if len(c.Receivers) == 0 {
		c.Receivers = defaults.Receivers
	}
	if c.BackupSuffix == "" {
		c.BackupSuffix = defaults.BackupSuffix
	}
	if c.FormatterCommand == "" {
		c.FormatterCommand = defaults.FormatterCommand
	}
	if c.ManifestFile == "" {
		c.ManifestFile = defaults.ManifestFile
	}
	if c.MaxFunctionLines == 0 {
		c.MaxFunctionLines = defaults.MaxFunctionLines
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.TargetFile == "" {
		return ErrTargetFileEmpty
	}
	if len(c.SearchDirs) == 0 {
		return ErrSearchDirsEmpty
	}
	if !strings.HasPrefix(c.FileExtension, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidFileExtension, c.FileExtension)
	}
	if c.ManifestFile == "" {
		return ErrManifestFileEmpty
	}
	if c.MaxFunctionLines <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxFunctionLines, c.MaxFunctionLines)
	}
	return nil
}

// LoadConfigWithFallback loads configuration from file with fallback to default.
func LoadConfigWithFallback(configPath string) (*Config, error) {
	manager := NewManager()

	// Try to load from file first
	if config, err := manager.LoadConfig(configPath); err == nil {
		return config, nil
	}

	// Fallback to default configuration
	return manager.DefaultConfig(), nil
}
