// Package format provides the external code formatter collaborator. The
// formatter is strictly best-effort: its absence is reported, never fatal.
package format

import (
	"fmt"

	"github.com/samadhiBot/messenger-cleanup/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=format.go -destination=mocks/format.gen.go -package=mocks

// Formatter interface defines the external formatting step.
type Formatter interface {
	// Name returns the formatter command name.
	Name() string

	// IsInstalled checks if the formatter is available on the system.
	IsInstalled() bool

	// Format formats the file at path in place.
	Format(path string) error
}

// SwiftFormat formats Swift sources with the swift-format tool.
type SwiftFormat struct {
	fs      fs.FS
	command string
}

// NewSwiftFormat creates a new SwiftFormat instance running the given command.
func NewSwiftFormat(fs fs.FS, command string) *SwiftFormat {
	return &SwiftFormat{
		fs:      fs,
		command: command,
	}
}

// Name returns the formatter command name.
func (s *SwiftFormat) Name() string {
	return s.command
}

// IsInstalled checks if the formatter is available on the system.
func (s *SwiftFormat) IsInstalled() bool {
	_, err := s.fs.Which(s.command)
	return err == nil
}

// Format formats the file at path in place.
func (s *SwiftFormat) Format(path string) error {
	if !s.IsInstalled() {
		return fmt.Errorf("%w: %s", ErrFormatterUnavailable, s.command)
	}

	if err := s.fs.RunCommand(s.command, "--in-place", path); err != nil {
		return fmt.Errorf("%w: %v", ErrFormatterFailed, err)
	}

	return nil
}
