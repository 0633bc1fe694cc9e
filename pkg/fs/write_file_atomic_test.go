//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_WriteFileAtomic(t *testing.T) {
	fs := NewFS()

	tmpDir, err := os.MkdirTemp("", "test-write-atomic-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	target := filepath.Join(tmpDir, "target.swift")

	// Write a new file
	err = fs.WriteFileAtomic(target, []byte("first"), 0644)
	assert.NoError(t, err)

	data, err := os.ReadFile(target)
	assert.NoError(t, err)
	assert.Equal(t, "first", string(data))

	// Overwrite an existing file
	err = fs.WriteFileAtomic(target, []byte("second"), 0644)
	assert.NoError(t, err)

	data, err = os.ReadFile(target)
	assert.NoError(t, err)
	assert.Equal(t, "second", string(data))

	// No leftover temporary files
	entries, err := os.ReadDir(tmpDir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFS_WriteFileAtomic_CreatesParentDirectories(t *testing.T) {
	fs := NewFS()

	tmpDir, err := os.MkdirTemp("", "test-write-atomic-parents-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	target := filepath.Join(tmpDir, "nested", "dir", "target.swift")

	err = fs.WriteFileAtomic(target, []byte("content"), 0644)
	assert.NoError(t, err)

	data, err := os.ReadFile(target)
	assert.NoError(t, err)
	assert.Equal(t, "content", string(data))
}
