package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	tsfixerr "github.com/EhssanAtassi/tsfix/pkg/errors"
)

// GenerateConfigContent renders the default configuration as a TOML document
// with every value commented out, ready to be dropped next to a project and
// edited.
func GenerateConfigContent() (string, error) {
	raw, err := gotoml.Marshal(Default())
	if err != nil {
		return "", tsfixerr.Wrap(err, tsfixerr.ErrInternal, "failed to marshal default configuration")
	}

	header := "# tsfix configuration. Uncomment and edit values to override the defaults.\n\n"
	return header + commentOutConfigValues(string(raw)), nil
}

// commentOutConfigValues comments out every assignment line while keeping
// blank lines, section headers, and existing comments as-is.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
