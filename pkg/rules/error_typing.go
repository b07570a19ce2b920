package rules

import (
	"regexp"
	"strings"

	"github.com/EhssanAtassi/tsfix/pkg/types"
)

var (
	catchClauseRe = regexp.MustCompile(`catch\s*\(\s*([a-zA-Z_$][\w$]*)\s*\)\s*{`)
	errorPropRe   = regexp.MustCompile(`\b([a-zA-Z_$][\w$]*)\.(stack|message)\b`)
)

// ErrorTyping silences TS18046 by annotating catch bindings with "unknown"
// and asserting receivers of .stack/.message as Error.
//
// The property rewrite fires whenever the file contains the substring
// "catch" anywhere. The guard is file-global rather than scope-aware, so
// unrelated .stack/.message accesses in a file that happens to have a catch
// block elsewhere are rewritten as well.
type ErrorTyping struct{}

func (r *ErrorTyping) Name() string { return NameErrorTyping }

func (r *ErrorTyping) Apply(path, content string) types.RuleResult {
	content = catchClauseRe.ReplaceAllString(content, "catch (${1}: unknown) {")

	if strings.Contains(content, "catch") {
		content = errorPropRe.ReplaceAllString(content, "(${1} as Error).${2}")
	}

	return types.RuleResult{Content: content}
}
