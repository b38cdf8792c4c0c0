package engine

import (
	"sort"

	"github.com/mrhapile/techtriage/pkg/types"
)

// FindMatches ranks the candidate rules for a device/category scope
// against the given facts. Candidates scoring below minScore are dropped;
// the rest are ordered by score descending, then authored confidence
// descending, with catalog order as the stable final tiebreak.
//
// Pool selection precedence: category (optionally narrowed by device),
// then device alone, then the full catalog.
func (e *Engine) FindMatches(facts types.Facts, device, category string, minScore float64) []types.RuleMatch {
	var pool []types.Rule
	switch {
	case category != "":
		pool = e.store.ByCategory(category, device)
	case device != "":
		pool = e.store.ByDevice(device)
	default:
		pool = e.store.All()
	}

	var matches []types.RuleMatch
	for i := range pool {
		rule := &pool[i]
		result := MatchConditions(rule, facts)
		if result.Score >= minScore {
			matches = append(matches, types.RuleMatch{Rule: rule, Result: result})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Result.Score != matches[j].Result.Score {
			return matches[i].Result.Score > matches[j].Result.Score
		}
		return matches[i].Rule.Confidence > matches[j].Rule.Confidence
	})
	return matches
}
