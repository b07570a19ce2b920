// Test Type: Unit Test
// Description: Tests for the file collector - recursive descent with
// extension filtering and directory exclusion

package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tsfixerr "github.com/EhssanAtassi/tsfix/pkg/errors"
	"github.com/EhssanAtassi/tsfix/pkg/scanner"
	"github.com/EhssanAtassi/tsfix/pkg/testutil"
)

func TestScanner_Collect(t *testing.T) {
	t.Run("collects_matching_files_recursively", func(t *testing.T) {
		fs := testutil.NewMemoryTree(t, map[string]string{
			"src/app.ts":              "export {};",
			"src/users/users.ts":      "export {};",
			"src/users/deep/util.ts":  "export {};",
			"src/README.md":           "# readme",
			"src/node_modules/dep.ts": "export {};",
			"src/dist/out.ts":         "export {};",
		})

		s := scanner.New([]string{".ts"}, []string{"node_modules", "dist"}, fs)
		files, err := s.Collect("src")
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{
			"src/app.ts",
			"src/users/users.ts",
			"src/users/deep/util.ts",
		}, files)
	})

	t.Run("excluded_directory_skipped_anywhere_in_tree", func(t *testing.T) {
		fs := testutil.NewMemoryTree(t, map[string]string{
			"src/a.ts":                      "export {};",
			"src/feature/node_modules/x.ts": "export {};",
		})

		s := scanner.New([]string{".ts"}, []string{"node_modules"}, fs)
		files, err := s.Collect("src")
		require.NoError(t, err)

		assert.Equal(t, []string{"src/a.ts"}, files)
	})

	t.Run("multiple_extensions", func(t *testing.T) {
		fs := testutil.NewMemoryTree(t, map[string]string{
			"src/a.ts":  "export {};",
			"src/b.tsx": "export {};",
			"src/c.js":  "module.exports = {};",
		})

		s := scanner.New([]string{".ts", ".tsx"}, nil, fs)
		files, err := s.Collect("src")
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"src/a.ts", "src/b.tsx"}, files)
	})

	t.Run("missing_root_aborts_with_error", func(t *testing.T) {
		fs := testutil.NewMemoryTree(t, nil)

		s := scanner.New([]string{".ts"}, nil, fs)
		_, err := s.Collect("src")

		require.Error(t, err)
		assert.True(t, tsfixerr.IsErrorCode(err, tsfixerr.ErrScanRoot))
	})

	t.Run("empty_tree_yields_no_files", func(t *testing.T) {
		fs := testutil.NewMemoryTree(t, map[string]string{
			"src/README.md": "# readme",
		})

		s := scanner.New([]string{".ts"}, nil, fs)
		files, err := s.Collect("src")
		require.NoError(t, err)

		assert.Empty(t, files)
	})
}
