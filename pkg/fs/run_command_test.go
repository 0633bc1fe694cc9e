//go:build integration

package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFS_RunCommand(t *testing.T) {
	fs := NewFS()

	// A successful command returns no error
	err := fs.RunCommand("true")
	assert.NoError(t, err)

	// A failing command surfaces ErrCommandFailed
	err = fs.RunCommand("false")
	assert.ErrorIs(t, err, ErrCommandFailed)

	// A missing command also fails
	err = fs.RunCommand("non-existing-command-xyz123")
	assert.Error(t, err)
}
