package rules

import (
	"regexp"
	"strings"

	"github.com/EhssanAtassi/tsfix/pkg/types"
)

var catchBindingRe = regexp.MustCompile(`catch\s*\(([a-zA-Z_$][\w$]*):?\s*\w*\)`)

// UnusedVars prefixes catch bindings with "_" so TS6133 stops flagging them
// as declared-but-unused. It does not check whether the binding is actually
// used in the catch body; it only skips names already carrying the prefix.
//
// Disabled by default: it rewrites the same catch clauses as error-typing
// and exists for projects that prefer silencing the binding over typing it.
type UnusedVars struct{}

func (r *UnusedVars) Name() string { return NameUnusedVars }

func (r *UnusedVars) Apply(path, content string) types.RuleResult {
	lines := strings.Split(content, "\n")
	fixed := make([]string, 0, len(lines))

	for _, line := range lines {
		if strings.Contains(line, "catch") && strings.Contains(line, "(") {
			if m := catchBindingRe.FindStringSubmatch(line); m != nil {
				varName := m[1]
				if !strings.HasPrefix(varName, "_") {
					bindingRe := regexp.MustCompile(`catch\s*\(` + regexp.QuoteMeta(varName) + `(:?\s*\w*)\)`)
					// "$" is a capture reference in replacement templates and
					// a legal identifier character, so it has to be doubled.
					quoted := strings.ReplaceAll(varName, "$", "$$")
					line = bindingRe.ReplaceAllString(line, "catch (_"+quoted+"${1})")
				}
			}
		}
		fixed = append(fixed, line)
	}

	return types.RuleResult{Content: strings.Join(fixed, "\n")}
}
