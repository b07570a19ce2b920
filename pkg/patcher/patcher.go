// Package patcher threads each collected file through the rule pipeline and
// writes back the result when it changed. One invocation produces one
// Summary; nothing persists between runs.
package patcher

import (
	"io/fs"
	"time"

	"github.com/rs/zerolog"

	tsfixerr "github.com/EhssanAtassi/tsfix/pkg/errors"
	"github.com/EhssanAtassi/tsfix/pkg/logging"
	"github.com/EhssanAtassi/tsfix/pkg/report"
	"github.com/EhssanAtassi/tsfix/pkg/scanner"
	"github.com/EhssanAtassi/tsfix/pkg/types"
)

const defaultFileMode fs.FileMode = 0644

// Options configures a Patcher.
type Options struct {
	FS            types.FS
	Rules         []types.Rule
	Reporter      report.Reporter
	Extensions    []string
	Exclude       []string
	VerifyCommand string

	// DryRun reports what would change without writing anything.
	DryRun bool
}

// Patcher runs the fix pipeline over a source tree.
type Patcher struct {
	fs            types.FS
	rules         []types.Rule
	reporter      report.Reporter
	scanner       *scanner.Scanner
	verifyCommand string
	dryRun        bool
	logger        zerolog.Logger
}

// New creates a Patcher from options.
func New(opts Options) *Patcher {
	return &Patcher{
		fs:            opts.FS,
		rules:         opts.Rules,
		reporter:      opts.Reporter,
		scanner:       scanner.New(opts.Extensions, opts.Exclude, opts.FS),
		verifyCommand: opts.VerifyCommand,
		dryRun:        opts.DryRun,
		logger:        logging.GetLogger("patcher"),
	}
}

// Run collects files under root, processes each one, and returns the run
// summary. Per-file failures are reported and counted but never abort the
// run; only a failed collection does.
func (p *Patcher) Run(root string) (*types.Summary, error) {
	defer logging.LogDuration(time.Now(), "fix run")

	p.reporter.Banner()

	files, err := p.scanner.Collect(root)
	if err != nil {
		return nil, err
	}
	p.reporter.FilesFound(len(files))

	summary := types.NewSummary()
	for _, path := range files {
		result := p.processFile(path)
		summary.Record(result)

		if result.Err != nil {
			p.logger.Warn().Str("file", path).Err(result.Err).Msg("File processing failed")
			p.reporter.FileError(path, result.Err)
			continue
		}
		if result.Changed {
			p.reporter.FileFixed(path, p.dryRun)
			if len(result.RemovedImports) > 0 {
				p.reporter.ImportsRemoved(path, result.RemovedImports)
			}
		}
	}

	p.reporter.Summary(summary, p.verifyCommand, p.dryRun)

	p.logger.Info().
		Int("scanned", summary.FilesScanned).
		Int("changed", summary.FilesChanged).
		Int("failed", summary.FilesFailed).
		Bool("dryRun", p.dryRun).
		Msg("Run complete")

	return summary, nil
}

// processFile reads one file, applies every rule in order, and writes the
// result back if anything changed. The write is a single whole-file
// overwrite; there is no temp-file-and-rename step.
func (p *Patcher) processFile(path string) types.FileResult {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return types.FileResult{
			Path: path,
			Err:  tsfixerr.Wrapf(err, tsfixerr.ErrFileRead, "cannot read %s", path),
		}
	}

	original := string(data)
	content := original
	var removed []string

	for _, rule := range p.rules {
		result := rule.Apply(path, content)
		content = result.Content
		removed = append(removed, result.RemovedImports...)
	}

	if content == original {
		return types.FileResult{Path: path}
	}

	if !p.dryRun {
		if err := p.fs.WriteFile(path, []byte(content), p.fileMode(path)); err != nil {
			return types.FileResult{
				Path: path,
				Err:  tsfixerr.Wrapf(err, tsfixerr.ErrFileWrite, "cannot write %s", path),
			}
		}
	}

	return types.FileResult{
		Path:           path,
		Changed:        true,
		RemovedImports: removed,
	}
}

// fileMode keeps the file's existing permissions on rewrite when they are
// readable, falling back to a standard mode.
func (p *Patcher) fileMode(path string) fs.FileMode {
	info, err := p.fs.Stat(path)
	if err != nil {
		return defaultFileMode
	}
	return info.Mode().Perm()
}
