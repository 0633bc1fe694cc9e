package cleaner

import (
	"errors"
	"fmt"

	"github.com/samadhiBot/messenger-cleanup/pkg/format"
)

// CleanOpts contains optional parameters for Clean.
type CleanOpts struct {
	// RemoveUnused drops functions with zero external references.
	RemoveUnused bool

	// DryRun computes and reports the outcome without touching any file.
	DryRun bool

	// Force skips the confirmation prompt before removing functions.
	Force bool

	// SkipFormat disables the best-effort formatter step.
	SkipFormat bool
}

// Clean regenerates the target file with functions sorted alphabetically,
// optionally removing the unused ones.
func (c *realCleaner) Clean(opts CleanOpts) (*Report, error) {
	buffer, report, err := c.analyze()
	if err != nil {
		return nil, err
	}

	keep := report.KeepSet(opts.RemoveUnused)
	content := c.generateContent(buffer, keep)

	if opts.DryRun {
		c.logger.Logf("Dry run - no changes made")
		c.logger.Logf("Cleaned file would contain %d functions (alphabetically sorted)", len(keep))
		if opts.RemoveUnused && len(report.UnusedFunctions) > 0 {
			c.logger.Logf("%d unused functions would be removed", len(report.UnusedFunctions))
		}
		return report, nil
	}

	// Removing functions is destructive enough to warrant a confirmation
	if opts.RemoveUnused && len(report.UnusedFunctions) > 0 && !opts.Force {
		message := fmt.Sprintf("Remove %d unused functions from %s?",
			len(report.UnusedFunctions), report.TargetFile)
		confirmed, err := c.prompter.PromptForConfirmation(message, false)
		if err != nil {
			return nil, fmt.Errorf("failed to confirm removal: %w", err)
		}
		if !confirmed {
			c.logger.Logf("Aborted - no changes made")
			return report, nil
		}
	}

	// Create a backup before overwriting the original
	backupPath := c.targetPath + c.config.BackupSuffix
	if err := c.fs.CopyFile(c.targetPath, backupPath); err != nil {
		return nil, fmt.Errorf("failed to create backup: %w", err)
	}
	c.logger.Logf("Backup created: %s", backupPath)

	if err := c.fs.WriteFileAtomic(c.targetPath, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("failed to write cleaned file: %w", err)
	}

	c.logger.Logf("%s updated", report.TargetFile)
	c.logger.Logf("Functions are now alphabetically sorted")
	if opts.RemoveUnused && len(report.UnusedFunctions) > 0 {
		c.logger.Logf("Removed %d unused functions", len(report.UnusedFunctions))
	}

	if !opts.SkipFormat {
		c.runFormatter()
	}

	return report, nil
}

// runFormatter invokes the external formatter on a best-effort basis.
func (c *realCleaner) runFormatter() {
	if err := c.formatter.Format(c.targetPath); err != nil {
		if errors.Is(err, format.ErrFormatterUnavailable) {
			c.logger.Logf("%s not available - manual formatting may be needed", c.formatter.Name())
			return
		}
		c.logger.Logf("Warning: %v", err)
		return
	}
	c.logger.Logf("Code formatted with %s", c.formatter.Name())
}
