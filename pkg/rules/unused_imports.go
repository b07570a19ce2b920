package rules

import (
	"regexp"
	"strings"

	"github.com/EhssanAtassi/tsfix/pkg/types"
)

var namedImportRe = regexp.MustCompile(`^import\s*{([^}]+)}\s*from\s*(['"])(.+)['"];?`)

// UnusedImports silences TS6133 by pruning named imports with no textual use
// in the rest of the file. Usage is a whole-word search over every line
// except the import line itself, so a name mentioned only in a comment or
// string literal still counts as used. Aliased imports ("X as Y") are
// checked against the alias.
//
// Import lines that lose no names are left byte-for-byte untouched. A line
// losing some names is rewritten with the survivors in declaration order,
// keeping the original quote style. An import whose names are all unused is
// commented out rather than deleted, which preserves line numbers and leaves
// an auditable trace.
type UnusedImports struct{}

func (r *UnusedImports) Name() string { return NameUnusedImports }

func (r *UnusedImports) Apply(path, content string) types.RuleResult {
	lines := strings.Split(content, "\n")
	fixed := make([]string, 0, len(lines))
	var removed []string

	for _, line := range lines {
		m := namedImportRe.FindStringSubmatch(line)
		if m == nil {
			fixed = append(fixed, line)
			continue
		}

		importsStr, quote, fromPath := m[1], m[2], m[3]
		var used []string
		var droppedHere bool

		// Every line textually identical to the import line is excluded
		// from the usage search, not just this occurrence.
		var rest []string
		for _, l := range lines {
			if l != line {
				rest = append(rest, l)
			}
		}
		restOfFile := strings.Join(rest, "\n")

		for _, imp := range strings.Split(importsStr, ",") {
			imp = strings.TrimSpace(imp)
			if imp == "" {
				continue
			}

			parts := strings.Split(imp, " as ")
			importName := strings.TrimSpace(parts[len(parts)-1])

			wordRe := regexp.MustCompile(`\b` + regexp.QuoteMeta(importName) + `\b`)
			if wordRe.MatchString(restOfFile) {
				used = append(used, imp)
			} else {
				removed = append(removed, importName)
				droppedHere = true
			}
		}

		switch {
		case !droppedHere:
			fixed = append(fixed, line)
		case len(used) > 0:
			fixed = append(fixed, "import { "+strings.Join(used, ", ")+" } from "+quote+fromPath+quote+";")
		default:
			fixed = append(fixed, "// "+line)
		}
	}

	return types.RuleResult{
		Content:        strings.Join(fixed, "\n"),
		RemovedImports: removed,
	}
}
