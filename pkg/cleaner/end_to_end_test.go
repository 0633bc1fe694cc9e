//go:build unit

package cleaner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	fsmocks "github.com/samadhiBot/messenger-cleanup/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const targetSource = `import Foundation

class Messenger {

    func zeta() {
        output("zeta")
    }

    func alpha(x: Int) {
        output("alpha")
    }

    func mid() {
        output("mid")
    }
}
`

// fakeProject wires a MockFS to behave like an in-memory project tree.
func fakeProject(ctrl *gomock.Controller, files map[string]string) (*fsmocks.MockFS, *string) {
	mockFS := fsmocks.NewMockFS(ctrl)
	written := new(string)

	mockFS.EXPECT().Exists(gomock.Any()).DoAndReturn(func(path string) (bool, error) {
		if _, ok := files[path]; ok {
			return true, nil
		}
		for file := range files {
			if strings.HasPrefix(file, path+string(os.PathSeparator)) {
				return true, nil
			}
		}
		return false, nil
	}).AnyTimes()

	mockFS.EXPECT().ReadFile(gomock.Any()).DoAndReturn(func(path string) ([]byte, error) {
		content, ok := files[path]
		if !ok {
			return nil, os.ErrNotExist
		}
		return []byte(content), nil
	}).AnyTimes()

	mockFS.EXPECT().FindFiles(gomock.Any(), gomock.Any()).DoAndReturn(func(root, ext string) ([]string, error) {
		var found []string
		for file := range files {
			if strings.HasPrefix(file, root+string(os.PathSeparator)) && strings.HasSuffix(file, ext) {
				found = append(found, file)
			}
		}
		return found, nil
	}).AnyTimes()

	mockFS.EXPECT().CopyFile(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockFS.EXPECT().WriteFileAtomic(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, data []byte, _ os.FileMode) error {
			*written = string(data)
			return nil
		}).AnyTimes()

	return mockFS, written
}

func runClean(t *testing.T, targetContent string, removeUnused bool) string {
	t.Helper()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := createTestConfig()
	targetPath := filepath.Join("/project", cfg.TargetFile)

	mockFS, written := fakeProject(ctrl, map[string]string{
		targetPath:                         targetContent,
		"/project/Tests/CallerTests.swift": "let result = msg.alpha(x)\n",
	})

	cleaner := NewCleaner(NewCleanerParams{
		FS:          mockFS,
		Config:      cfg,
		ProjectRoot: "/project",
	})

	_, err := cleaner.Clean(CleanOpts{RemoveUnused: removeUnused, Force: true, SkipFormat: true})
	require.NoError(t, err)

	return *written
}

func TestClean_EndToEnd_RemoveUnused(t *testing.T) {
	output := runClean(t, targetSource, true)

	// Only alpha survives, framed by the original header and trailer
	expected := `import Foundation

class Messenger {

    func alpha(x: Int) {
        output("alpha")
    }

}
`
	assert.Equal(t, expected, output)
}

func TestClean_EndToEnd_KeepAllSorted(t *testing.T) {
	output := runClean(t, targetSource, false)

	// All functions survive in alphabetical order
	alphaAt := strings.Index(output, "func alpha")
	midAt := strings.Index(output, "func mid")
	zetaAt := strings.Index(output, "func zeta")
	require.True(t, alphaAt >= 0 && midAt >= 0 && zetaAt >= 0)
	assert.Less(t, alphaAt, midAt)
	assert.Less(t, midAt, zetaAt)
}

func TestClean_EndToEnd_SortIsIdempotent(t *testing.T) {
	first := runClean(t, targetSource, false)
	second := runClean(t, first, false)

	assert.Equal(t, first, second)
}
