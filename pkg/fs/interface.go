package fs

import (
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the file system operations used by the cleanup tool.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// FindFiles recursively finds all files under root with the given extension.
	FindFiles(root, extension string) ([]string, error)

	// CopyFile copies the file at src to dst, preserving permissions.
	CopyFile(src, dst string) error

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// Getwd returns the current working directory.
	Getwd() (string, error)

	// Which finds the executable path for a command using the system's PATH.
	Which(command string) (string, error)

	// RunCommand executes a command with arguments and waits for it to complete.
	RunCommand(command string, args ...string) error
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
