// Package extract locates function definitions in a source buffer using a
// lexical line scanner. It is intentionally not a real parser: brace
// characters inside string or comment literals are counted like any other,
// which can corrupt a detected boundary (known limitation).
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samadhiBot/messenger-cleanup/pkg/fs"
	"github.com/samadhiBot/messenger-cleanup/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=extract.go -destination=mocks/extract.gen.go -package=mocks

// Function represents one discovered function definition, spanning its
// attached documentation block through the closing brace of its body.
type Function struct {
	Name      string
	Lines     []string
	StartLine int // 1-based, first line of the documentation block
	EndLine   int // 1-based, last line of the body
}

// Buffer is the structural split of a source file: everything before the
// first function definition, the functions themselves, and the final
// top-level closing brace.
type Buffer struct {
	Header     []string
	Functions  map[string]Function
	Trailer    string
	HasTrailer bool
}

// Extractor interface provides function extraction functionality.
type Extractor interface {
	// ExtractFile reads the file at path and extracts its functions.
	ExtractFile(path string) (*Buffer, error)

	// Extract splits the given source text into header, functions and trailer.
	Extract(content string) *Buffer
}

// NewExtractorParams contains parameters for creating a new Extractor instance.
type NewExtractorParams struct {
	FS               fs.FS
	Logger           logger.Logger
	DocComment       string
	AccessModifiers  []string
	MaxFunctionLines int
}

type realExtractor struct {
	fs               fs.FS
	logger           logger.Logger
	docComment       string
	maxFunctionLines int
	signatureRegexp  *regexp.Regexp
}

// NewExtractor creates a new Extractor instance.
func NewExtractor(params NewExtractorParams) Extractor {
	return &realExtractor{
		fs:               params.FS,
		logger:           params.Logger,
		docComment:       params.DocComment,
		maxFunctionLines: params.MaxFunctionLines,
		signatureRegexp:  SignatureRegexp(params.AccessModifiers),
	}
}

// SignatureRegexp builds the function signature pattern: an optional access
// modifier, the func keyword, an identifier and the opening parenthesis of
// the parameter list.
func SignatureRegexp(accessModifiers []string) *regexp.Regexp {
	quoted := make([]string, 0, len(accessModifiers))
	for _, modifier := range accessModifiers {
		quoted = append(quoted, regexp.QuoteMeta(modifier))
	}
	return regexp.MustCompile(`^\s*(?:(?:` + strings.Join(quoted, "|") + `)\s+)?func\s+(\w+)\s*\(`)
}

// ExtractFile reads the file at path and extracts its functions.
func (e *realExtractor) ExtractFile(path string) (*Buffer, error) {
	exists, err := e.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check target file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, path)
	}

	content, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target file: %w", err)
	}

	return e.Extract(string(content)), nil
}

// Extract splits the given source text into header, functions and trailer.
func (e *realExtractor) Extract(content string) *Buffer {
	lines := strings.Split(content, "\n")
	buffer := &Buffer{
		Functions: make(map[string]Function),
	}

	headerEnd := len(lines)
	i := 0
	for i < len(lines) {
		match := e.signatureRegexp.FindStringSubmatch(lines[i])
		if match == nil {
			i++
			continue
		}

		name := match[1]
		function := e.extractFunction(lines, name, i)

		// The header ends where the first function's doc block starts, so
		// that attached documentation is never carried twice.
		if headerEnd == len(lines) {
			headerEnd = function.StartLine - 1
		}

		if _, exists := buffer.Functions[name]; exists {
			// Later definition wins on a duplicate name
			e.logger.Logf("Warning: duplicate definition of %s at line %d replaces earlier one", name, i+1)
		}
		buffer.Functions[name] = function

		i = function.EndLine
	}

	buffer.Header = lines[:headerEnd]
	buffer.Trailer, buffer.HasTrailer = e.findTrailer(lines)

	return buffer
}

// extractFunction collects one function starting at the signature line,
// walking back over its documentation block and forward to its closing brace.
func (e *realExtractor) extractFunction(lines []string, name string, signature int) Function {
	// Walk backward over immediately preceding doc comment lines. A blank
	// line or code line breaks the attachment.
	docStart := signature
	for docStart > 0 && strings.HasPrefix(strings.TrimSpace(lines[docStart-1]), e.docComment) {
		docStart--
	}

	funcLines := make([]string, 0, signature-docStart+1)
	funcLines = append(funcLines, lines[docStart:signature]...)

	// Walk forward tracking brace depth. Counting begins once the first
	// open brace has been seen; the body ends when the depth returns to
	// zero. The scan window is capped to bound pathological mismatches,
	// which can truncate legitimately long functions.
	braceCount := 0
	started := false
	j := signature
	for j < len(lines) {
		current := lines[j]
		funcLines = append(funcLines, current)

		if strings.Contains(current, "{") {
			started = true
			braceCount += strings.Count(current, "{")
		}
		if started {
			braceCount -= strings.Count(current, "}")
			if braceCount == 0 {
				break
			}
		}

		if j-signature >= e.maxFunctionLines {
			break
		}
		j++
	}
	if j >= len(lines) {
		j = len(lines) - 1
	}

	return Function{
		Name:      name,
		Lines:     funcLines,
		StartLine: docStart + 1,
		EndLine:   j + 1,
	}
}

// findTrailer locates the final top-level closing brace line.
func (e *realExtractor) findTrailer(lines []string) (string, bool) {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) == "}" && !e.signatureRegexp.MatchString(lines[i]) {
			return lines[i], true
		}
	}
	return "", false
}
