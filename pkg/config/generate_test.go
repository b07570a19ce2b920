package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EhssanAtassi/tsfix/pkg/config"
)

func TestGenerateConfigContent(t *testing.T) {
	content, err := config.GenerateConfigContent()
	require.NoError(t, err)

	t.Run("contains_all_sections", func(t *testing.T) {
		assert.Contains(t, content, "[scan]")
		assert.Contains(t, content, "[rules]")
		assert.Contains(t, content, "[verify]")
	})

	t.Run("values_are_commented_out", func(t *testing.T) {
		for _, line := range strings.Split(content, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			// Anything that survives uncommented must be a section header.
			assert.Truef(t, strings.HasPrefix(trimmed, "["),
				"unexpected uncommented line: %q", line)
		}
	})

	t.Run("mentions_default_values", func(t *testing.T) {
		assert.Contains(t, content, "src")
		assert.Contains(t, content, "npm run build")
		assert.Contains(t, content, "unused_vars")
	})
}
