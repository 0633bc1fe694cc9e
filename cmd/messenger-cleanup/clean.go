package main

import (
	"fmt"

	"github.com/samadhiBot/messenger-cleanup/pkg/cleaner"
	"github.com/spf13/cobra"
)

func createCleanCmd() *cobra.Command {
	var opts cleaner.CleanOpts

	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Rewrite the target file with functions sorted alphabetically",
		Long: `Rewrite the target file with its functions sorted alphabetically. A backup
of the original is created before the file is overwritten, and the external
formatter is run afterwards when available.

Examples:
  messenger-cleanup clean
  messenger-cleanup clean --remove-unused
  messenger-cleanup clean --remove-unused --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig()

			root, err := resolveProjectRoot(cfg)
			if err != nil {
				return err
			}

			if _, err := buildCleaner(cfg, root).Clean(opts); err != nil {
				return fmt.Errorf("cleanup failed: %w", err)
			}
			return nil
		},
	}

	cleanCmd.Flags().BoolVar(&opts.RemoveUnused, "remove-unused", false, "Remove unused functions (default: keep all functions)")
	cleanCmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show what would be done without making changes")
	cleanCmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Skip the confirmation prompt before removing functions")
	cleanCmd.Flags().BoolVar(&opts.SkipFormat, "skip-format", false, "Skip the external formatter step")

	return cleanCmd
}
