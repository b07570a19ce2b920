package rules

import (
	"regexp"
	"strings"

	"github.com/EhssanAtassi/tsfix/pkg/types"
)

var findOneCallRe = regexp.MustCompile(`(await\s+this\.\w+\.findOne\([^)]+\))`)

// NullableAssignment silences TS2322 on assignments of repository lookups to
// non-nullable properties by appending a non-null assertion to the awaited
// findOne call. A line qualifies when it contains all of "findOne", "=", and
// "await"; there is no verification that the assignment target is actually
// non-nullable-typed.
//
// No marker check: running this rule on an already-asserted call appends a
// second "!".
type NullableAssignment struct{}

func (r *NullableAssignment) Name() string { return NameNullableAssignment }

func (r *NullableAssignment) Apply(path, content string) types.RuleResult {
	lines := strings.Split(content, "\n")
	fixed := make([]string, 0, len(lines))

	for _, line := range lines {
		if strings.Contains(line, "findOne") && strings.Contains(line, "=") && strings.Contains(line, "await") {
			line = findOneCallRe.ReplaceAllString(line, "${1}!")
		}
		fixed = append(fixed, line)
	}

	return types.RuleResult{Content: strings.Join(fixed, "\n")}
}
