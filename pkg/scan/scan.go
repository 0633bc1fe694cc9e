// Package scan searches a project tree for call-shaped references to a
// function name. The match is textual, not semantic: anything that looks
// like an invocation counts.
package scan

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samadhiBot/messenger-cleanup/pkg/fs"
	"github.com/samadhiBot/messenger-cleanup/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=scan.go -destination=mocks/scan.gen.go -package=mocks

// Usage is one location where a function name appears to be invoked.
type Usage struct {
	File string `json:"file"` // relative to the project root
	Line int    `json:"line"` // 1-based
}

// Scanner interface provides reference scanning functionality.
type Scanner interface {
	// FindUsages returns every location under the project root where the
	// given function name appears to be invoked. The target file itself is
	// excluded so the definition site never counts as a reference.
	FindUsages(projectRoot, name string) ([]Usage, error)
}

// NewScannerParams contains parameters for creating a new Scanner instance.
type NewScannerParams struct {
	FS            fs.FS
	Logger        logger.Logger
	SearchDirs    []string
	FileExtension string
	TargetFile    string
	Receivers     []string
}

type realScanner struct {
	fs            fs.FS
	logger        logger.Logger
	searchDirs    []string
	fileExtension string
	targetBase    string
	receivers     []string
}

// NewScanner creates a new Scanner instance.
func NewScanner(params NewScannerParams) Scanner {
	return &realScanner{
		fs:            params.FS,
		logger:        params.Logger,
		searchDirs:    params.SearchDirs,
		fileExtension: params.FileExtension,
		targetBase:    filepath.Base(params.TargetFile),
		receivers:     params.Receivers,
	}
}

// usagePatterns builds the alternative occurrence shapes for a function name:
// a member access (".name("), a free-standing call ("name("), and one
// receiver-qualified form per configured receiver variable. The receiver
// forms are subsumed by the member access but kept as explicit alternatives.
func (s *realScanner) usagePatterns(name string) []*regexp.Regexp {
	quoted := regexp.QuoteMeta(name)

	patterns := []string{
		`\.\s*` + quoted + `\s*\(`,
		`\b` + quoted + `\s*\(`,
	}
	for _, receiver := range s.receivers {
		patterns = append(patterns, regexp.QuoteMeta(receiver)+`\s*\.\s*`+quoted+`\s*\(`)
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		compiled = append(compiled, regexp.MustCompile(pattern))
	}
	return compiled
}

// FindUsages returns every location under the project root where the given
// function name appears to be invoked.
func (s *realScanner) FindUsages(projectRoot, name string) ([]Usage, error) {
	patterns := s.usagePatterns(name)

	var usages []Usage
	for _, searchDir := range s.searchDirs {
		dir := filepath.Join(projectRoot, searchDir)

		exists, err := s.fs.Exists(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to check search directory %s: %w", dir, err)
		}
		if !exists {
			continue
		}

		files, err := s.fs.FindFiles(dir, s.fileExtension)
		if err != nil {
			return nil, fmt.Errorf("failed to traverse %s: %w", dir, err)
		}

		for _, file := range files {
			// Skip the target file so the definition doesn't count
			if filepath.Base(file) == s.targetBase {
				continue
			}

			content, err := s.fs.ReadFile(file)
			if err != nil {
				s.logger.Logf("Warning: skipping unreadable file %s: %v", file, err)
				continue
			}

			usages = append(usages, s.matchFile(projectRoot, file, string(content), patterns)...)
		}
	}

	return usages, nil
}

// matchFile collects every pattern match in a single file's content.
func (s *realScanner) matchFile(projectRoot, path, content string, patterns []*regexp.Regexp) []Usage {
	relPath, err := filepath.Rel(projectRoot, path)
	if err != nil {
		relPath = path
	}

	var usages []Usage
	for _, pattern := range patterns {
		for _, match := range pattern.FindAllStringIndex(content, -1) {
			usages = append(usages, Usage{
				File: relPath,
				Line: strings.Count(content[:match[0]], "\n") + 1,
			})
		}
	}
	return usages
}
