package engine

import (
	"strings"

	"go.uber.org/zap"

	"github.com/mrhapile/techtriage/pkg/types"
)

// Verify runs goal-driven backward chaining: can the hypothesized cause
// be proven from current working memory? The hypothesis is matched
// against rule cause text by case-insensitive substring containment. The
// first fully satisfied supporting rule proves it; otherwise the result
// lists what the last examined rule still needs, distinguishing facts
// with the wrong value from facts not known at all.
//
// Reporting only the last rule's gap (rather than a union across
// candidates) mirrors the behavior callers have relied on; rules sharing
// a cause are near-duplicates, so the list is representative.
func (e *Engine) Verify(hypothesis, device string) types.Verification {
	e.tracef("Starting backward chaining for hypothesis: %s", hypothesis)

	pool := e.store.All()
	if device != "" {
		pool = e.store.ByDevice(device)
	}

	needle := strings.ToLower(hypothesis)
	var supporting []*types.Rule
	for i := range pool {
		if strings.Contains(strings.ToLower(pool[i].Cause), needle) {
			supporting = append(supporting, &pool[i])
		}
	}

	if len(supporting) == 0 {
		e.tracef("No rules found that support hypothesis: %s", hypothesis)
		return types.Verification{Proven: false, MissingFacts: []string{}}
	}

	var required []string
	for _, rule := range supporting {
		required = nil
		satisfied := true
		for _, key := range rule.Conditions.Keys() {
			expected, _ := rule.Conditions.Get(key)
			actual, known := e.memory[key]
			switch {
			case !known:
				required = append(required, "Need to know: "+key)
				satisfied = false
			case !valuesMatch(actual, expected):
				required = append(required, key+" should be "+expected.String())
				satisfied = false
			}
		}
		if satisfied {
			e.tracef("Hypothesis PROVEN by rule: %s", rule.ID)
			e.logger.Debug("hypothesis proven",
				zap.String("hypothesis", hypothesis),
				zap.String("rule", rule.ID))
			return types.Verification{Proven: true, MissingFacts: []string{}}
		}
		e.tracef("Rule %s needs: %s", rule.ID, strings.Join(required, ", "))
	}

	return types.Verification{Proven: false, MissingFacts: required}
}
