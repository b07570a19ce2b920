// Test Type: Unit Test
// Description: Tests for the possibly-undefined rule coalescing .affected
// comparisons

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EhssanAtassi/tsfix/pkg/rules"
)

func TestPossiblyUndefined_Apply(t *testing.T) {
	rule := &rules.PossiblyUndefined{}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "greater_than_comparison",
			input:    "if (result.affected > 0) {",
			expected: "if ((result.affected ?? 0) > 0) {",
		},
		{
			name:     "strict_equality",
			input:    "return result.affected === 1;",
			expected: "return (result.affected ?? 0) === 1;",
		},
		{
			name:     "inequality",
			input:    "if (res.affected !== 0) {",
			expected: "if ((res.affected ?? 0) !== 0) {",
		},
		{
			name:     "no_comparison_untouched",
			input:    "const n = result.affected;",
			expected: "const n = result.affected;",
		},
		{
			name:     "unrelated_property_untouched",
			input:    "if (result.count > 0) {",
			expected: "if (result.count > 0) {",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rule.Apply("user.service.ts", tt.input)
			assert.Equal(t, tt.expected, result.Content)
		})
	}
}

func TestPossiblyUndefined_SecondRunIsNoOp(t *testing.T) {
	rule := &rules.PossiblyUndefined{}

	// "??" is not in the comparison-operator class, so the rewritten form
	// no longer matches. There is no marker check guaranteeing this.
	once := rule.Apply("a.ts", "if (result.affected > 0) {").Content
	twice := rule.Apply("a.ts", once).Content

	assert.Equal(t, once, twice)
}
