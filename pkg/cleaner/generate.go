package cleaner

import (
	"strings"

	"github.com/samadhiBot/messenger-cleanup/pkg/extract"
)

// generateContent reassembles the target file: the original header, the kept
// functions in alphabetical order separated by blank lines, and the original
// trailer.
func (c *realCleaner) generateContent(buffer *extract.Buffer, keep []string) string {
	result := make([]string, 0, len(buffer.Header))
	result = append(result, buffer.Header...)

	for i, name := range keep {
		function, ok := buffer.Functions[name]
		if !ok {
			continue
		}
		if i > 0 {
			result = append(result, "")
		}
		result = append(result, function.Lines...)
	}

	if buffer.HasTrailer {
		result = append(result, "", buffer.Trailer)
	}

	content := strings.Join(result, "\n")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content
}
