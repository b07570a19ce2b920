// Package scanner collects candidate source files by recursive descent from
// a root directory, skipping dependency and build-output directories.
package scanner

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	tsfixerr "github.com/EhssanAtassi/tsfix/pkg/errors"
	"github.com/EhssanAtassi/tsfix/pkg/logging"
	"github.com/EhssanAtassi/tsfix/pkg/types"
)

// Scanner walks a source tree and returns file paths matching the configured
// extensions. Ordering follows directory-entry order and is deterministic,
// but callers must not attach meaning to it beyond stable logging.
type Scanner struct {
	extensions []string
	exclude    map[string]bool
	fs         types.FS
	logger     zerolog.Logger
}

// New creates a scanner for the given extensions and excluded directory names.
func New(extensions, exclude []string, fs types.FS) *Scanner {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}
	return &Scanner{
		extensions: extensions,
		exclude:    excluded,
		fs:         fs,
		logger:     logging.GetLogger("scanner"),
	}
}

// Collect returns every matching file reachable from root. An unreadable
// directory aborts the walk with an error; skipping silently would hide
// files from the run.
func (s *Scanner) Collect(root string) ([]string, error) {
	if _, err := s.fs.Stat(root); err != nil {
		return nil, tsfixerr.Wrapf(err, tsfixerr.ErrScanRoot, "cannot read root directory %s", root)
	}

	var files []string
	if err := s.walk(root, &files); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("root", root).
		Int("fileCount", len(files)).
		Msg("Scan complete")

	return files, nil
}

func (s *Scanner) walk(dir string, files *[]string) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return tsfixerr.Wrapf(err, tsfixerr.ErrScanDir, "cannot read directory %s", dir)
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if s.exclude[name] {
				s.logger.Debug().Str("dir", path).Msg("Skipping excluded directory")
				continue
			}
			if err := s.walk(path, files); err != nil {
				return err
			}
			continue
		}

		if s.matchesExtension(name) {
			*files = append(*files, path)
		}
	}

	return nil
}

func (s *Scanner) matchesExtension(name string) bool {
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
