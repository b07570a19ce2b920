package types

import (
	"io/fs"
)

// FS abstracts the filesystem operations tsfix needs, so the pipeline can
// run against the real OS filesystem or an in-memory one in tests.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
}

// RuleResult is what a rule hands back: the (possibly rewritten) content and
// anything it wants surfaced in the run report.
type RuleResult struct {
	Content string

	// RemovedImports lists import names the rule dropped, in file order.
	// Only the unused-import rule populates this.
	RemovedImports []string
}

// Rule is one independent text-to-text transformation applied to a file's
// full content. Rules are stateless across files and must be no-ops when
// their patterns do not apply.
type Rule interface {
	// Name returns the stable rule identifier used in config and docs.
	Name() string

	// Apply rewrites content. The path is informational (reporting only);
	// rules never touch the filesystem.
	Apply(path, content string) RuleResult
}

// FileResult is the outcome of pushing one file through the pipeline.
type FileResult struct {
	Path           string
	Changed        bool
	RemovedImports []string
	Err            error
}

// Summary accumulates the aggregate counts for one run. It lives for the
// duration of a single invocation and is discarded after reporting.
type Summary struct {
	FilesScanned   int
	FilesChanged   int
	FilesFailed    int
	RemovedImports map[string][]string
}

// NewSummary returns an empty summary ready for accumulation.
func NewSummary() *Summary {
	return &Summary{
		RemovedImports: make(map[string][]string),
	}
}

// Record folds one file result into the summary.
func (s *Summary) Record(r FileResult) {
	s.FilesScanned++
	if r.Err != nil {
		s.FilesFailed++
		return
	}
	if r.Changed {
		s.FilesChanged++
	}
	if len(r.RemovedImports) > 0 {
		s.RemovedImports[r.Path] = r.RemovedImports
	}
}
