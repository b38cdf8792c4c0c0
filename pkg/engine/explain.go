package engine

import (
	"strings"

	"github.com/mrhapile/techtriage/pkg/types"
)

// Explain renders a human-readable justification for a fired rule from
// its matched condition keys and their current working-memory values. A
// rule that somehow fired with nothing matched still gets a sentence
// instead of an error.
func (e *Engine) Explain(rule *types.Rule, matched []string) string {
	clauses := make([]string, 0, len(matched))
	for _, key := range matched {
		value := "unknown"
		if v, ok := e.memory[key]; ok {
			value = v.String()
		}
		clauses = append(clauses, strings.ReplaceAll(key, "_", " ")+" = "+value)
	}

	if len(clauses) == 0 {
		return "The system identified a potential issue: " + rule.Cause + "."
	}
	return "The system concluded '" + rule.Cause + "' because the following conditions were met: " +
		strings.Join(clauses, ", ") + "."
}
