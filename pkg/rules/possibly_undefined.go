package rules

import (
	"regexp"

	"github.com/EhssanAtassi/tsfix/pkg/types"
)

var affectedCompareRe = regexp.MustCompile(`(\w+)\.affected\s*([><=!]+)`)

// PossiblyUndefined silences TS18048 on comparisons against the .affected
// count of TypeORM delete/update results by coalescing a missing value to
// zero: "result.affected > 0" becomes "(result.affected ?? 0) > 0".
//
// The match is purely textual and applies anywhere in the file, not only to
// statements involving a result type. There is no marker check, so the rule
// relies on the rewritten operand ("?? 0") no longer matching the operator
// class to avoid re-application.
type PossiblyUndefined struct{}

func (r *PossiblyUndefined) Name() string { return NamePossiblyUndefined }

func (r *PossiblyUndefined) Apply(path, content string) types.RuleResult {
	content = affectedCompareRe.ReplaceAllString(content, "(${1}.affected ?? 0) ${2}")
	return types.RuleResult{Content: content}
}
