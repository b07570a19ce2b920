// Package testutil provides helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EhssanAtassi/tsfix/pkg/filesystem"
	"github.com/EhssanAtassi/tsfix/pkg/types"
)

// NewMemoryTree creates an in-memory filesystem populated with the given
// files, keyed by path relative to the filesystem root.
func NewMemoryTree(t *testing.T, files map[string]string) types.FS {
	t.Helper()

	fs := filesystem.NewMemory()
	for path, content := range files {
		dir := filepath.Dir(path)
		if dir != "." {
			require.NoError(t, fs.MkdirAll(dir, 0755))
		}
		require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
	}
	return fs
}

// ReadFileString reads a file from the filesystem and fails the test on error.
func ReadFileString(t *testing.T, fs types.FS, path string) string {
	t.Helper()

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
