//go:build unit

package main

import (
	"testing"

	"github.com/samadhiBot/messenger-cleanup/pkg/config"
	"github.com/samadhiBot/messenger-cleanup/pkg/logger"
	"github.com/samadhiBot/messenger-cleanup/pkg/project"
	"github.com/stretchr/testify/assert"
)

func TestResolveProjectRootRejectsMissingManifest(t *testing.T) {
	// An explicit --project-root that does not contain the manifest file
	// must be rejected instead of silently falling back to auto-detection.
	originalProjectRoot := projectRoot
	projectRoot = "/tmp/nonexistent-project-root"
	defer func() { projectRoot = originalProjectRoot }()

	cfg := config.NewManager().DefaultConfig()

	_, err := resolveProjectRoot(cfg)

	assert.ErrorIs(t, err, project.ErrRootNotFound)
}

func TestNewLoggerHonorsQuietFlag(t *testing.T) {
	originalQuiet := quiet
	defer func() { quiet = originalQuiet }()

	quiet = true
	assert.IsType(t, logger.NewNoopLogger(), newLogger())

	quiet = false
	assert.IsType(t, logger.NewDefaultLogger(), newLogger())
}
