// Package main provides the command-line interface for the messenger-cleanup tool.
package main

import (
	"log"

	"github.com/samadhiBot/messenger-cleanup/pkg/cleaner"
	"github.com/samadhiBot/messenger-cleanup/pkg/config"
	"github.com/samadhiBot/messenger-cleanup/pkg/fs"
	"github.com/samadhiBot/messenger-cleanup/pkg/logger"
	"github.com/samadhiBot/messenger-cleanup/pkg/project"
	"github.com/spf13/cobra"
)

var (
	quiet       bool
	verbose     bool
	configPath  string
	projectRoot string
)

// loadConfig loads the configuration, falling back to the defaults when no
// config file is present.
func loadConfig() *config.Config {
	path := configPath
	if path == "" {
		path = defaultConfigPath()
	}

	cfg, err := config.LoadConfigWithFallback(path)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", path, err)
	}

	return cfg
}

// newLogger returns the logger matching the output flags.
func newLogger() logger.Logger {
	if quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger()
}

// resolveProjectRoot returns the project root, either validated from the
// --project-root flag or auto-detected by walking parent directories.
func resolveProjectRoot(cfg *config.Config) (string, error) {
	detector := project.NewDetector(fs.NewFS())

	if projectRoot != "" {
		if err := detector.ValidateRoot(projectRoot, cfg.ManifestFile); err != nil {
			return "", err
		}
		return projectRoot, nil
	}

	return detector.DetectRoot(cfg.ManifestFile)
}

// buildCleaner assembles a Cleaner for the given configuration and root.
func buildCleaner(cfg *config.Config, root string) cleaner.Cleaner {
	instance := cleaner.NewCleaner(cleaner.NewCleanerParams{
		Config:      cfg,
		ProjectRoot: root,
	})
	instance.SetLogger(newLogger())
	instance.SetVerbose(verbose)
	return instance
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "messenger-cleanup",
		Short: "Messenger Cleanup - unused function analyzer",
		Long: `Analyzes a messenger source file, finds functions that are never ` +
			`referenced anywhere else in the codebase, and rewrites the file with ` +
			`functions sorted alphabetically.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project-root", "", "Path to project root (default: auto-detect)")

	// Add subcommands
	rootCmd.AddCommand(createAnalyzeCmd(), createCleanCmd(), createConfigCmd(), createVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
