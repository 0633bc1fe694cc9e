package cleaner

import (
	"fmt"
	"sort"

	"github.com/samadhiBot/messenger-cleanup/pkg/extract"
	"github.com/samadhiBot/messenger-cleanup/pkg/scan"
)

// Analyze extracts the target file's functions and classifies each as used
// or unused based on references found across the project.
func (c *realCleaner) Analyze() (*Report, error) {
	_, report, err := c.analyze()
	return report, err
}

// analyze runs the full extraction and scan pass, returning both the raw
// buffer (needed for regeneration) and the classification report.
func (c *realCleaner) analyze() (*extract.Buffer, *Report, error) {
	c.verbosePrint("Extracting functions from %s...", c.config.TargetFile)

	buffer, err := c.extractor.ExtractFile(c.targetPath)
	if err != nil {
		return nil, nil, err
	}

	c.verbosePrint("Found %d functions", len(buffer.Functions))

	// Scan in name order so progress output and usage maps are deterministic
	names := make([]string, 0, len(buffer.Functions))
	for name := range buffer.Functions {
		names = append(names, name)
	}
	sort.Strings(names)

	report := &Report{
		ProjectRoot:    c.projectRoot,
		TargetFile:     c.config.TargetFile,
		TotalFunctions: len(names),
		Usages:         make(map[string][]scan.Usage),
	}

	c.verbosePrint("Analyzing function usage...")
	for _, name := range names {
		usages, err := c.scanner.FindUsages(c.projectRoot, name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan usages of %s: %w", name, err)
		}

		if len(usages) == 0 {
			report.UnusedFunctions = append(report.UnusedFunctions, name)
			c.verbosePrint("  Checking %s... UNUSED", name)
		} else {
			report.UsedFunctions = append(report.UsedFunctions, name)
			report.Usages[name] = usages
			c.verbosePrint("  Checking %s... used in %d location(s)", name, len(usages))
		}
	}

	c.logSummary(report)

	return buffer, report, nil
}

// logSummary logs the analysis summary. The summary is part of the normal
// output; only --quiet suppresses it.
func (c *realCleaner) logSummary(report *Report) {
	c.logger.Logf("Analysis summary for %s:", report.TargetFile)
	c.logger.Logf("  Total functions: %d", report.TotalFunctions)
	c.logger.Logf("  Used functions: %d", len(report.UsedFunctions))
	c.logger.Logf("  Unused functions: %d", len(report.UnusedFunctions))
	for _, name := range report.UnusedFunctions {
		c.logger.Logf("    - %s", name)
	}
}
