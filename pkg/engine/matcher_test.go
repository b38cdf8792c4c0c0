package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhapile/techtriage/pkg/types"
)

func dustRule() *types.Rule {
	var c types.Conditions
	c.Set("device", types.StringValue("computer"))
	c.Set("fan_noise", types.StringValue("yes"))
	c.Set("hot_surface", types.BoolValue(true))
	return &types.Rule{
		ID:         "R_HEAT",
		Category:   "overheating",
		Conditions: c,
		Cause:      "Dust accumulation in the cooling system",
		Solutions:  []string{"Clean the fans", "Improve airflow"},
		Confidence: 0.9,
	}
}

func TestMatchConditionsFullMatch(t *testing.T) {
	facts := types.Facts{
		"device":      types.StringValue("computer"),
		"fan_noise":   types.StringValue("yes"),
		"hot_surface": types.BoolValue(true),
	}

	res := MatchConditions(dustRule(), facts)
	assert.InDelta(t, 1.0, res.Score, 1e-9)
	assert.Equal(t, []string{"device", "fan_noise", "hot_surface"}, res.Matched)
	assert.Empty(t, res.Unmatched)
}

func TestMatchConditionsAbsentFactIsUnmatched(t *testing.T) {
	facts := types.Facts{
		"device":    types.StringValue("computer"),
		"fan_noise": types.StringValue("yes"),
	}

	res := MatchConditions(dustRule(), facts)
	assert.InDelta(t, 2.0/3.0, res.Score, 1e-9)
	assert.Equal(t, []string{"device", "fan_noise"}, res.Matched)
	assert.Equal(t, []string{"hot_surface"}, res.Unmatched)
}

func TestMatchConditionsPartition(t *testing.T) {
	rule := dustRule()
	facts := types.Facts{"fan_noise": types.StringValue("no")}

	res := MatchConditions(rule, facts)
	assert.Len(t, res.Matched, 0)
	assert.Len(t, res.Unmatched, rule.Conditions.Len())
}

func TestMatchConditionsEmptyRuleScoresZero(t *testing.T) {
	rule := &types.Rule{ID: "EMPTY", Cause: "nothing"}
	res := MatchConditions(rule, types.Facts{"anything": types.BoolValue(true)})
	assert.Zero(t, res.Score)
	assert.Empty(t, res.Matched)
}

func TestMatchConditionsMoreFactsNeverLowerScore(t *testing.T) {
	rule := dustRule()
	facts := types.Facts{"device": types.StringValue("computer")}

	before := MatchConditions(rule, facts).Score
	facts["fan_noise"] = types.StringValue("yes")
	after := MatchConditions(rule, facts).Score
	assert.GreaterOrEqual(t, after, before)

	// Adding an unrelated fact changes nothing.
	facts["irrelevant"] = types.BoolValue(true)
	assert.InDelta(t, after, MatchConditions(rule, facts).Score, 1e-9)
}

func TestValuesMatchBooleanTokens(t *testing.T) {
	yes := types.BoolValue(true)
	no := types.BoolValue(false)

	for _, token := range []string{"yes", "true", "1", "YES", "True"} {
		assert.True(t, valuesMatch(types.StringValue(token), yes), "token %q", token)
	}
	for _, token := range []string{"no", "false", "0", "NO"} {
		assert.True(t, valuesMatch(types.StringValue(token), no), "token %q", token)
	}

	// Hedged or unrelated answers never satisfy a boolean expectation.
	assert.False(t, valuesMatch(types.StringValue("maybe"), yes))
	assert.False(t, valuesMatch(types.StringValue("maybe"), no))
	assert.False(t, valuesMatch(types.StringValue("no"), yes))
	assert.False(t, valuesMatch(types.StringValue("yes"), no))
}

func TestValuesMatchBooleanFacts(t *testing.T) {
	assert.True(t, valuesMatch(types.BoolValue(true), types.BoolValue(true)))
	assert.False(t, valuesMatch(types.BoolValue(false), types.BoolValue(true)))
}

func TestValuesMatchStringsCaseInsensitive(t *testing.T) {
	assert.True(t, valuesMatch(types.StringValue("Computer"), types.StringValue("computer")))
	assert.False(t, valuesMatch(types.StringValue("mobile"), types.StringValue("computer")))

	// A boolean fact against a string expectation compares its rendered form.
	assert.True(t, valuesMatch(types.BoolValue(true), types.StringValue("true")))
}

func TestMatchConditionsIsPure(t *testing.T) {
	rule := dustRule()
	facts := types.Facts{"device": types.StringValue("computer")}

	first := MatchConditions(rule, facts)
	second := MatchConditions(rule, facts)
	require.Equal(t, first, second)
	assert.Len(t, facts, 1)
}
