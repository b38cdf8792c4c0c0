package engine

import (
	"strings"

	"github.com/mrhapile/techtriage/pkg/types"
)

// Tokens recognized when a boolean expectation is answered with a string
// fact. Anything outside both sets is a mismatch, never a guess.
var (
	affirmativeTokens = map[string]bool{"yes": true, "true": true, "1": true}
	negativeTokens    = map[string]bool{"no": true, "false": true, "0": true}
)

// MatchConditions scores one rule against a fact set. It is a pure
// function: no side effects, deterministic output. Condition keys land in
// exactly one of Matched/Unmatched, preserving the rule's authored order;
// keys absent from facts always count as unmatched.
func MatchConditions(rule *types.Rule, facts types.Facts) types.MatchResult {
	var res types.MatchResult
	keys := rule.Conditions.Keys()
	for _, key := range keys {
		expected, _ := rule.Conditions.Get(key)
		actual, known := facts[key]
		if known && valuesMatch(actual, expected) {
			res.Matched = append(res.Matched, key)
		} else {
			res.Unmatched = append(res.Unmatched, key)
		}
	}
	// Zero conditions scores zero: a rule must never fire trivially.
	if len(keys) > 0 {
		res.Score = float64(len(res.Matched)) / float64(len(keys))
	}
	return res
}

// valuesMatch applies the type-driven equality policy, dispatching on the
// expected value's type rather than the fact's.
func valuesMatch(actual, expected types.Value) bool {
	switch expected.Kind() {
	case types.KindBool:
		if actual.Kind() == types.KindBool {
			return actual.Bool() == expected.Bool()
		}
		token := strings.ToLower(actual.String())
		if expected.Bool() {
			return affirmativeTokens[token]
		}
		return negativeTokens[token]
	default:
		return strings.EqualFold(actual.String(), expected.String())
	}
}
