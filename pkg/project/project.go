// Package project provides project root detection for the messenger-cleanup tool.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/samadhiBot/messenger-cleanup/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=project.go -destination=mocks/project.gen.go -package=mocks

// Detector interface provides project root detection functionality.
type Detector interface {
	// DetectRoot walks parent directories from the working directory looking
	// for the manifest file and returns the first directory containing it.
	DetectRoot(manifestFile string) (string, error)

	// ValidateRoot checks that the given directory contains the manifest file.
	ValidateRoot(root, manifestFile string) error
}

type realDetector struct {
	fs fs.FS
}

// NewDetector creates a new Detector instance.
func NewDetector(fs fs.FS) Detector {
	return &realDetector{
		fs: fs,
	}
}

// DetectRoot walks parent directories from the working directory looking for
// the manifest file and returns the first directory containing it.
func (d *realDetector) DetectRoot(manifestFile string) (string, error) {
	dir, err := d.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	for {
		exists, err := d.fs.Exists(filepath.Join(dir, manifestFile))
		if err != nil {
			return "", fmt.Errorf("failed to check for %s in %s: %w", manifestFile, dir, err)
		}
		if exists {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: %s not found in any parent directory", ErrRootNotFound, manifestFile)
		}
		dir = parent
	}
}

// ValidateRoot checks that the given directory contains the manifest file.
func (d *realDetector) ValidateRoot(root, manifestFile string) error {
	exists, err := d.fs.Exists(filepath.Join(root, manifestFile))
	if err != nil {
		return fmt.Errorf("failed to check for %s in %s: %w", manifestFile, root, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s not found in %s", ErrRootNotFound, manifestFile, root)
	}
	return nil
}
