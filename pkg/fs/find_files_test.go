//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_FindFiles(t *testing.T) {
	fs := NewFS()

	// Create a temporary directory tree with mixed file types
	tmpDir, err := os.MkdirTemp("", "test-find-files-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "nested", "deep"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.swift"), []byte("// a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "b.txt"), []byte("b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "nested", "c.swift"), []byte("// c"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "nested", "deep", "d.swift"), []byte("// d"), 0644))

	// Only .swift files should be returned, across all nesting levels
	files, err := fs.FindFiles(tmpDir, ".swift")
	assert.NoError(t, err)
	assert.Len(t, files, 3)
	for _, file := range files {
		assert.True(t, strings.HasPrefix(file, tmpDir))
		assert.Equal(t, ".swift", filepath.Ext(file))
	}
}

func TestFS_FindFiles_MissingRoot(t *testing.T) {
	fs := NewFS()

	// Traversing a non-existing root is an error
	_, err := fs.FindFiles("non-existing-root-dir", ".swift")
	assert.Error(t, err)
}
