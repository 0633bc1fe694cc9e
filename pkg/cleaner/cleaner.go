// Package cleaner orchestrates the messenger cleanup: extraction, reference
// scanning, and regeneration of the target file.
package cleaner

import (
	"path/filepath"

	"github.com/samadhiBot/messenger-cleanup/pkg/config"
	"github.com/samadhiBot/messenger-cleanup/pkg/extract"
	"github.com/samadhiBot/messenger-cleanup/pkg/format"
	"github.com/samadhiBot/messenger-cleanup/pkg/fs"
	"github.com/samadhiBot/messenger-cleanup/pkg/logger"
	"github.com/samadhiBot/messenger-cleanup/pkg/prompt"
	"github.com/samadhiBot/messenger-cleanup/pkg/scan"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=cleaner.go -destination=mocks/cleaner.gen.go -package=mocks

// Cleaner interface provides messenger file analysis and cleanup functionality.
type Cleaner interface {
	// Analyze extracts the target file's functions and classifies each as
	// used or unused based on references found across the project.
	Analyze() (*Report, error)

	// Clean regenerates the target file with functions sorted alphabetically,
	// optionally removing the unused ones.
	Clean(opts CleanOpts) (*Report, error)

	// SetLogger sets the logger for this Cleaner instance.
	SetLogger(logger logger.Logger)

	// SetVerbose enables or disables verbose progress output.
	SetVerbose(verbose bool)
}

// NewCleanerParams contains parameters for creating a new Cleaner instance.
// Collaborators left nil are replaced with their real implementations.
type NewCleanerParams struct {
	FS          fs.FS
	Logger      logger.Logger
	Config      *config.Config
	ProjectRoot string
	Extractor   extract.Extractor
	Scanner     scan.Scanner
	Formatter   format.Formatter
	Prompter    prompt.Prompter
}

type realCleaner struct {
	fs          fs.FS
	logger      logger.Logger
	verbose     bool
	config      *config.Config
	projectRoot string
	targetPath  string
	extractor   extract.Extractor
	scanner     scan.Scanner
	formatter   format.Formatter
	prompter    prompt.Prompter
}

// NewCleaner creates a new Cleaner instance.
func NewCleaner(params NewCleanerParams) Cleaner {
	fsInstance := params.FS
	if fsInstance == nil {
		fsInstance = fs.NewFS()
	}

	loggerInstance := params.Logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNoopLogger()
	}

	extractorInstance := params.Extractor
	if extractorInstance == nil {
		extractorInstance = extract.NewExtractor(extract.NewExtractorParams{
			FS:               fsInstance,
			Logger:           loggerInstance,
			DocComment:       params.Config.DocComment,
			AccessModifiers:  params.Config.AccessModifiers,
			MaxFunctionLines: params.Config.MaxFunctionLines,
		})
	}

	scannerInstance := params.Scanner
	if scannerInstance == nil {
		scannerInstance = scan.NewScanner(scan.NewScannerParams{
			FS:            fsInstance,
			Logger:        loggerInstance,
			SearchDirs:    params.Config.SearchDirs,
			FileExtension: params.Config.FileExtension,
			TargetFile:    params.Config.TargetFile,
			Receivers:     params.Config.Receivers,
		})
	}

	formatterInstance := params.Formatter
	if formatterInstance == nil {
		formatterInstance = format.NewSwiftFormat(fsInstance, params.Config.FormatterCommand)
	}

	prompterInstance := params.Prompter
	if prompterInstance == nil {
		prompterInstance = prompt.NewPrompt()
	}

	return &realCleaner{
		fs:          fsInstance,
		logger:      loggerInstance,
		config:      params.Config,
		projectRoot: params.ProjectRoot,
		targetPath:  filepath.Join(params.ProjectRoot, params.Config.TargetFile),
		extractor:   extractorInstance,
		scanner:     scannerInstance,
		formatter:   formatterInstance,
		prompter:    prompterInstance,
	}
}

// SetLogger sets the logger for this Cleaner instance.
func (c *realCleaner) SetLogger(logger logger.Logger) {
	c.logger = logger
}

// SetVerbose enables or disables verbose progress output.
func (c *realCleaner) SetVerbose(verbose bool) {
	c.verbose = verbose
}

// verbosePrint logs a formatted message only in verbose mode.
func (c *realCleaner) verbosePrint(msg string, args ...interface{}) {
	if c.verbose {
		c.logger.Logf(msg, args...)
	}
}
