package rules

import (
	"regexp"
	"strings"

	"github.com/EhssanAtassi/tsfix/pkg/types"
)

// Matches property declarations like "  propertyName: Type;" with optional
// trailing comment. Group 3 (whitespace before the colon) is intentionally
// dropped on rewrite.
var propertyDeclRe = regexp.MustCompile(`^(\s+)([a-zA-Z_$][\w$]*)(\s*):(.*);(\s*)(//.*)?$`)

// DefiniteAssignment silences TS2564 by inserting a definite-assignment
// assertion ("!") into class property declarations that have no initializer,
// no optionality marker, and no existing assertion.
//
// The two-space indentation check is the only thing distinguishing a class
// property from a top-level statement, so nested block statements of the
// same shape are rewritten too.
type DefiniteAssignment struct{}

func (r *DefiniteAssignment) Name() string { return NameDefiniteAssignment }

func (r *DefiniteAssignment) Apply(path, content string) types.RuleResult {
	lines := strings.Split(content, "\n")
	fixed := make([]string, 0, len(lines))

	for _, line := range lines {
		m := propertyDeclRe.FindStringSubmatch(line)
		if m == nil || strings.ContainsAny(line, "!?=") {
			fixed = append(fixed, line)
			continue
		}

		indent, propName, typePart, space2, comment := m[1], m[2], m[4], m[5], m[6]
		if len(indent) < 2 {
			fixed = append(fixed, line)
			continue
		}

		fixed = append(fixed, indent+propName+"!:"+typePart+";"+space2+comment)
	}

	return types.RuleResult{Content: strings.Join(fixed, "\n")}
}
