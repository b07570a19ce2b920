// Test Type: Unit Test
// Description: Tests for layered configuration loading - defaults, file,
// environment

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EhssanAtassi/tsfix/pkg/config"
	tsfixerr "github.com/EhssanAtassi/tsfix/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "src", cfg.Scan.Root)
	assert.Equal(t, []string{".ts"}, cfg.Scan.Extensions)
	assert.Equal(t, []string{"node_modules", "dist"}, cfg.Scan.Exclude)
	assert.Equal(t, "npm run build", cfg.Verify.Command)

	assert.True(t, cfg.Rules.DefiniteAssignment)
	assert.True(t, cfg.Rules.ErrorTyping)
	assert.True(t, cfg.Rules.PossiblyUndefined)
	assert.True(t, cfg.Rules.NullableAssignment)
	assert.True(t, cfg.Rules.UnusedImports)
	assert.False(t, cfg.Rules.UnusedVars)
}

func TestLoad(t *testing.T) {
	t.Run("file_overrides_defaults", func(t *testing.T) {
		path := writeTempConfig(t, "tsfix.toml", `
[scan]
root = "lib"

[rules]
unused_imports = false
`)

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "lib", cfg.Scan.Root)
		assert.False(t, cfg.Rules.UnusedImports)
		// Untouched keys keep their defaults.
		assert.Equal(t, []string{".ts"}, cfg.Scan.Extensions)
		assert.True(t, cfg.Rules.DefiniteAssignment)
	})

	t.Run("yaml_config_supported", func(t *testing.T) {
		path := writeTempConfig(t, "tsfix.yaml", `
scan:
  root: app
verify:
  command: yarn build
`)

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "app", cfg.Scan.Root)
		assert.Equal(t, "yarn build", cfg.Verify.Command)
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		path := writeTempConfig(t, "tsfix.toml", `
[scan]
root = "lib"
`)
		t.Setenv("TSFIX_SCAN_ROOT", "app")
		t.Setenv("TSFIX_RULES_UNUSED_VARS", "true")

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "app", cfg.Scan.Root)
		assert.True(t, cfg.Rules.UnusedVars)
	})

	t.Run("explicit_missing_file_errors", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))

		require.Error(t, err)
		assert.True(t, tsfixerr.IsErrorCode(err, tsfixerr.ErrConfigLoad))
	})

	t.Run("invalid_toml_errors", func(t *testing.T) {
		path := writeTempConfig(t, "tsfix.toml", "[scan\nroot =")

		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, tsfixerr.IsErrorCode(err, tsfixerr.ErrConfigParse))
	})

	t.Run("empty_root_rejected", func(t *testing.T) {
		path := writeTempConfig(t, "tsfix.toml", `
[scan]
root = ""
`)

		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, tsfixerr.IsErrorCode(err, tsfixerr.ErrConfigValid))
	})

	t.Run("extension_without_dot_rejected", func(t *testing.T) {
		path := writeTempConfig(t, "tsfix.toml", `
[scan]
extensions = ["ts"]
`)

		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, tsfixerr.IsErrorCode(err, tsfixerr.ErrConfigValid))
	})
}

func TestRulesConfig_Enabled(t *testing.T) {
	enabled := config.Default().Rules.Enabled()

	assert.True(t, enabled["definite-assignment"])
	assert.True(t, enabled["unused-imports"])
	assert.False(t, enabled["unused-vars"])
}

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
