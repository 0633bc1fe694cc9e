//go:build unit

package extract

import (
	"strings"
	"testing"

	"github.com/samadhiBot/messenger-cleanup/pkg/fs/mocks"
	"github.com/samadhiBot/messenger-cleanup/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestExtractor(maxLines int) Extractor {
	return NewExtractor(NewExtractorParams{
		Logger:           logger.NewNoopLogger(),
		DocComment:       "///",
		AccessModifiers:  []string{"open", "public", "private", "internal"},
		MaxFunctionLines: maxLines,
	})
}

const messengerSource = `import Foundation

/// The standard messenger.
open class StandardMessenger: Messenger {

    /// Greets the player.
    /// Used at game start.
    public func hello(name: String) -> String {
        output("Hello, \(name)!")
    }

    func zeta() {
        output("zeta")
    }

    private func mid(count: Int) {
        if count > 0 {
            output("mid")
        }
    }
}
`

func TestExtract_Completeness(t *testing.T) {
	extractor := newTestExtractor(50)

	buffer := extractor.Extract(messengerSource)

	require.Len(t, buffer.Functions, 3)

	hello := buffer.Functions["hello"]
	assert.Equal(t, "hello", hello.Name)
	assert.Equal(t, 6, hello.StartLine)
	assert.Equal(t, 10, hello.EndLine)

	zeta := buffer.Functions["zeta"]
	assert.Equal(t, 12, zeta.StartLine)
	assert.Equal(t, 14, zeta.EndLine)

	mid := buffer.Functions["mid"]
	assert.Equal(t, 16, mid.StartLine)
	assert.Equal(t, 20, mid.EndLine)

	// No record includes another function's lines
	assert.NotContains(t, strings.Join(zeta.Lines, "\n"), "hello")
	assert.NotContains(t, strings.Join(mid.Lines, "\n"), "zeta")
}

func TestExtract_DocumentationAttachment(t *testing.T) {
	extractor := newTestExtractor(50)

	buffer := extractor.Extract(messengerSource)

	// Two consecutive doc lines are the first two lines of the record
	hello := buffer.Functions["hello"]
	require.True(t, len(hello.Lines) >= 2)
	assert.Contains(t, hello.Lines[0], "/// Greets the player.")
	assert.Contains(t, hello.Lines[1], "/// Used at game start.")
}

func TestExtract_BlankLineBreaksDocAttachment(t *testing.T) {
	extractor := newTestExtractor(50)

	content := `class C {
    /// Orphaned doc comment.

    func lonely() {
    }
}
`
	buffer := extractor.Extract(content)

	lonely, ok := buffer.Functions["lonely"]
	require.True(t, ok)
	assert.Contains(t, lonely.Lines[0], "func lonely()")
	assert.NotContains(t, strings.Join(lonely.Lines, "\n"), "///")
}

func TestExtract_NameCollisionLastWins(t *testing.T) {
	extractor := newTestExtractor(50)

	content := `class C {
    func twice() {
        output("first")
    }

    func twice() {
        output("second")
    }
}
`
	buffer := extractor.Extract(content)

	require.Len(t, buffer.Functions, 1)
	twice := buffer.Functions["twice"]
	assert.Contains(t, strings.Join(twice.Lines, "\n"), "second")
	assert.NotContains(t, strings.Join(twice.Lines, "\n"), "first")
	assert.Equal(t, 6, twice.StartLine)
}

func TestExtract_ScanWindowCap(t *testing.T) {
	extractor := newTestExtractor(5)

	var b strings.Builder
	b.WriteString("class C {\n")
	b.WriteString("    func runaway() {\n")
	// Unbalanced body that never closes
	for i := 0; i < 20; i++ {
		b.WriteString("        output(\"line\")\n")
	}
	b.WriteString("}\n")

	buffer := extractor.Extract(b.String())

	runaway, ok := buffer.Functions["runaway"]
	require.True(t, ok)

	// Signature line plus the capped window
	assert.Len(t, runaway.Lines, 6)
	assert.Equal(t, 7, runaway.EndLine)
}

func TestExtract_HeaderAndTrailer(t *testing.T) {
	extractor := newTestExtractor(50)

	buffer := extractor.Extract(messengerSource)

	// Header ends where the first function's doc block starts; the doc
	// lines belong to the function record, not the header
	require.Len(t, buffer.Header, 5)
	assert.Equal(t, "import Foundation", buffer.Header[0])
	assert.Equal(t, "open class StandardMessenger: Messenger {", buffer.Header[3])

	require.True(t, buffer.HasTrailer)
	assert.Equal(t, "}", buffer.Trailer)
}

func TestExtract_NoFunctions(t *testing.T) {
	extractor := newTestExtractor(50)

	content := "import Foundation\n\nlet x = 1\n"
	buffer := extractor.Extract(content)

	assert.Empty(t, buffer.Functions)
	assert.False(t, buffer.HasTrailer)
}

func TestExtractFile_TargetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	extractor := NewExtractor(NewExtractorParams{
		FS:               mockFS,
		Logger:           logger.NewNoopLogger(),
		DocComment:       "///",
		AccessModifiers:  []string{"public"},
		MaxFunctionLines: 50,
	})

	mockFS.EXPECT().Exists("/project/Sources/Missing.swift").Return(false, nil)

	_, err := extractor.ExtractFile("/project/Sources/Missing.swift")
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestExtractFile_ReadsThroughFS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFS(ctrl)
	extractor := NewExtractor(NewExtractorParams{
		FS:               mockFS,
		Logger:           logger.NewNoopLogger(),
		DocComment:       "///",
		AccessModifiers:  []string{"open", "public", "private", "internal"},
		MaxFunctionLines: 50,
	})

	mockFS.EXPECT().Exists("/project/Sources/Messenger.swift").Return(true, nil)
	mockFS.EXPECT().ReadFile("/project/Sources/Messenger.swift").Return([]byte(messengerSource), nil)

	buffer, err := extractor.ExtractFile("/project/Sources/Messenger.swift")
	assert.NoError(t, err)
	assert.Len(t, buffer.Functions, 3)
}
