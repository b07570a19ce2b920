// Test Type: Integration Test
// Description: Tests for the fix pipeline - scan, rewrite, conditional write,
// and run summary

package patcher_test

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EhssanAtassi/tsfix/pkg/patcher"
	"github.com/EhssanAtassi/tsfix/pkg/report"
	"github.com/EhssanAtassi/tsfix/pkg/rules"
	"github.com/EhssanAtassi/tsfix/pkg/style"
	"github.com/EhssanAtassi/tsfix/pkg/testutil"
	"github.com/EhssanAtassi/tsfix/pkg/types"
)

func newPatcher(fs types.FS, out *bytes.Buffer, dryRun bool) *patcher.Patcher {
	return patcher.New(patcher.Options{
		FS:            fs,
		Rules:         rules.ForConfig(map[string]bool{
			rules.NameDefiniteAssignment: true,
			rules.NameErrorTyping:        true,
			rules.NamePossiblyUndefined:  true,
			rules.NameNullableAssignment: true,
			rules.NameUnusedImports:      true,
		}),
		Reporter:      report.New(out, style.FormatText),
		Extensions:    []string{".ts"},
		Exclude:       []string{"node_modules", "dist"},
		VerifyCommand: "npm run build",
		DryRun:        dryRun,
	})
}

func TestPatcher_Run(t *testing.T) {
	t.Run("rewrites_and_reports_changed_files", func(t *testing.T) {
		memFS := testutil.NewMemoryTree(t, map[string]string{
			"src/user.entity.ts": "import { Column, Unused } from \"typeorm\";\n" +
				"export class User {\n" +
				"  @Column()\n" +
				"  name: string;\n" +
				"}",
			"src/clean.ts": "export const ok = true;\n",
		})

		var out bytes.Buffer
		summary, err := newPatcher(memFS, &out, false).Run("src")
		require.NoError(t, err)

		assert.Equal(t, 2, summary.FilesScanned)
		assert.Equal(t, 1, summary.FilesChanged)
		assert.Equal(t, 0, summary.FilesFailed)
		assert.Equal(t, []string{"Unused"}, summary.RemovedImports["src/user.entity.ts"])

		content := testutil.ReadFileString(t, memFS, "src/user.entity.ts")
		assert.Contains(t, content, "  name!: string;")
		assert.Contains(t, content, "import { Column } from \"typeorm\";")

		output := out.String()
		assert.Contains(t, output, "Starting TypeScript error fixes...")
		assert.Contains(t, output, "Found 2 TypeScript files")
		assert.Contains(t, output, "✓ Fixed: src/user.entity.ts")
		assert.Contains(t, output, "Removed unused imports in user.entity.ts: Unused")
		assert.Contains(t, output, "✓ Fixed 1 files")
		assert.Contains(t, output, `Run "npm run build" to verify the fixes`)
	})

	t.Run("clean_file_is_not_written", func(t *testing.T) {
		memFS := testutil.NewMemoryTree(t, map[string]string{
			"src/clean.ts": "export const ok = true;\n",
		})
		recorder := &writeRecorder{FS: memFS}

		var out bytes.Buffer
		summary, err := newPatcher(recorder, &out, false).Run("src")
		require.NoError(t, err)

		assert.Equal(t, 1, summary.FilesScanned)
		assert.Equal(t, 0, summary.FilesChanged)
		assert.Empty(t, recorder.writes)
	})

	t.Run("dry_run_reports_without_writing", func(t *testing.T) {
		original := "export class A {\n  id: number;\n}"
		memFS := testutil.NewMemoryTree(t, map[string]string{
			"src/a.ts": original,
		})
		recorder := &writeRecorder{FS: memFS}

		var out bytes.Buffer
		p := patcher.New(patcher.Options{
			FS:         recorder,
			Rules:      rules.All(),
			Reporter:   report.New(&out, style.FormatText),
			Extensions: []string{".ts"},
			DryRun:     true,
		})

		summary, err := p.Run("src")
		require.NoError(t, err)

		assert.Equal(t, 1, summary.FilesChanged)
		assert.Empty(t, recorder.writes)
		assert.Equal(t, original, testutil.ReadFileString(t, memFS, "src/a.ts"))
		assert.Contains(t, out.String(), "~ Would fix: src/a.ts")
		assert.Contains(t, out.String(), "~ Would fix 1 of 1 files")
	})

	t.Run("per_file_failure_does_not_abort_run", func(t *testing.T) {
		memFS := testutil.NewMemoryTree(t, map[string]string{
			"src/bad.ts":  "whatever",
			"src/good.ts": "export class B {\n  id: number;\n}",
		})
		failing := &failingReadFS{FS: memFS, failPath: "src/bad.ts"}

		var out bytes.Buffer
		summary, err := newPatcher(failing, &out, false).Run("src")
		require.NoError(t, err)

		assert.Equal(t, 2, summary.FilesScanned)
		assert.Equal(t, 1, summary.FilesChanged)
		assert.Equal(t, 1, summary.FilesFailed)
		assert.Contains(t, out.String(), "✗ Error processing src/bad.ts")
		assert.Contains(t, out.String(), "✓ Fixed: src/good.ts")
	})

	t.Run("missing_root_aborts", func(t *testing.T) {
		memFS := testutil.NewMemoryTree(t, nil)

		var out bytes.Buffer
		_, err := newPatcher(memFS, &out, false).Run("src")
		require.Error(t, err)
	})

	t.Run("second_run_over_patched_tree_changes_nothing", func(t *testing.T) {
		memFS := testutil.NewMemoryTree(t, map[string]string{
			"src/user.entity.ts": "import { Column } from \"typeorm\";\n" +
				"export class User {\n" +
				"  @Column()\n" +
				"  name: string;\n" +
				"}",
		})

		var out bytes.Buffer
		first, err := newPatcher(memFS, &out, false).Run("src")
		require.NoError(t, err)
		require.Equal(t, 1, first.FilesChanged)

		second, err := newPatcher(memFS, &out, false).Run("src")
		require.NoError(t, err)
		assert.Equal(t, 0, second.FilesChanged)
	})
}

// writeRecorder records WriteFile calls so tests can assert that unchanged
// files are never rewritten.
type writeRecorder struct {
	types.FS
	writes []string
}

func (w *writeRecorder) WriteFile(name string, data []byte, perm fs.FileMode) error {
	w.writes = append(w.writes, name)
	return w.FS.WriteFile(name, data, perm)
}

// failingReadFS fails ReadFile for one path to exercise per-file error
// handling.
type failingReadFS struct {
	types.FS
	failPath string
}

func (f *failingReadFS) ReadFile(name string) ([]byte, error) {
	if name == f.failPath {
		return nil, errors.New("simulated read failure")
	}
	return f.FS.ReadFile(name)
}
