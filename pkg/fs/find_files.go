package fs

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindFiles recursively finds all files under root with the given extension.
func (f *realFS) FindFiles(root, extension string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
