package fs

import (
	"os"
)

// CopyFile copies the file at src to dst, preserving permissions.
func (f *realFS) CopyFile(src, dst string) error {
	// Stat the source file to get its permissions
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	// Read source file contents
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	// Write destination atomically with the source permissions
	return f.WriteFileAtomic(dst, data, info.Mode().Perm())
}
