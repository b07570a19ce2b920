package rules

import (
	"github.com/EhssanAtassi/tsfix/pkg/types"
)

// Rule name constants, stable across config, docs, and reporting.
const (
	NameDefiniteAssignment = "definite-assignment"
	NameErrorTyping        = "error-typing"
	NamePossiblyUndefined  = "possibly-undefined"
	NameNullableAssignment = "nullable-assignment"
	NameUnusedImports      = "unused-imports"
	NameUnusedVars         = "unused-vars"
)

// All returns every shipped rule in pipeline order.
func All() []types.Rule {
	return []types.Rule{
		&DefiniteAssignment{},
		&ErrorTyping{},
		&PossiblyUndefined{},
		&NullableAssignment{},
		&UnusedImports{},
		&UnusedVars{},
	}
}

// ForConfig returns the enabled subset of the pipeline, preserving order.
// Unknown names in the map are ignored.
func ForConfig(enabled map[string]bool) []types.Rule {
	var active []types.Rule
	for _, rule := range All() {
		if enabled[rule.Name()] {
			active = append(active, rule)
		}
	}
	return active
}
