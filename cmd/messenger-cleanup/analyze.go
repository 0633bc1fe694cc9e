package main

import (
	"encoding/json"
	"fmt"

	"github.com/samadhiBot/messenger-cleanup/pkg/cleaner"
	"github.com/spf13/cobra"
)

func createAnalyzeCmd() *cobra.Command {
	var jsonOutput bool

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report used and unused functions without modifying anything",
		Long: `Extract every function from the target file and report which ones are
referenced elsewhere in the codebase.

Examples:
  messenger-cleanup analyze
  messenger-cleanup analyze --json
  messenger-cleanup analyze --project-root /path/to/project`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig()

			root, err := resolveProjectRoot(cfg)
			if err != nil {
				return err
			}

			report, err := buildCleaner(cfg, root).Analyze()
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if jsonOutput {
				return outputJSON(report)
			}
			return nil
		},
	}

	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report in JSON format")

	return analyzeCmd
}

// outputJSON prints the analysis report as indented JSON.
func outputJSON(report *cleaner.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
