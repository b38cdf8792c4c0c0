package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhapile/techtriage/pkg/types"
)

func testRule(id, category, device string, symptoms ...string) types.Rule {
	var c types.Conditions
	c.Set(types.ConditionDevice, types.StringValue(device))
	for _, s := range symptoms {
		c.Set(s, types.BoolValue(true))
	}
	return types.Rule{
		ID:         id,
		Category:   category,
		Conditions: c,
		Cause:      "cause for " + id,
		Solutions:  []string{"solution for " + id},
		Confidence: 0.8,
	}
}

func testStore() *Store {
	computer := []types.Rule{
		testRule("C_HEAT_1", "overheating", "computer", "fan_noise", "hot_surface"),
		testRule("C_NET_1", "network_issues", "computer", "dns_error"),
	}
	mobile := []types.Rule{
		testRule("M_BATT_1", "battery_issues", "mobile", "battery_drain"),
	}
	return New(computer, mobile)
}

func TestStoreByDevice(t *testing.T) {
	s := testStore()

	assert.Len(t, s.ByDevice("computer"), 2)
	assert.Len(t, s.ByDevice("mobile"), 1)

	// Case-insensitive device names.
	assert.Len(t, s.ByDevice("COMPUTER"), 2)

	// Unknown devices get the whole catalog rather than nothing.
	assert.Len(t, s.ByDevice("smartwatch"), 3)
	assert.Len(t, s.ByDevice(""), 3)
}

func TestStoreByCategory(t *testing.T) {
	s := testStore()

	rules := s.ByCategory("overheating", "computer")
	require.Len(t, rules, 1)
	assert.Equal(t, "C_HEAT_1", rules[0].ID)

	assert.Empty(t, s.ByCategory("overheating", "mobile"))
	assert.Empty(t, s.ByCategory("no_such_category", ""))
}

func TestStoreByID(t *testing.T) {
	s := testStore()

	r, ok := s.ByID("M_BATT_1")
	require.True(t, ok)
	assert.Equal(t, "battery_issues", r.Category)

	_, ok = s.ByID("UNKNOWN")
	assert.False(t, ok)
}

func TestStoreCategoriesSorted(t *testing.T) {
	s := testStore()
	assert.Equal(t, []string{"battery_issues", "network_issues", "overheating"}, s.Categories())
}

func TestStoreSymptomKeys(t *testing.T) {
	s := testStore()

	keys := s.SymptomKeys("overheating", "computer")
	assert.Equal(t, []string{"fan_noise", "hot_surface"}, keys)

	// The reserved device key never shows up.
	assert.NotContains(t, keys, types.ConditionDevice)
	assert.Empty(t, s.SymptomKeys("no_such_category", ""))
}

func TestQuestionsFor(t *testing.T) {
	qs := QuestionsFor("computer", "overheating")
	require.NotEmpty(t, qs)
	assert.Equal(t, "fan_noise", qs[0].Key)
	assert.Contains(t, qs[0].Options, "yes")

	assert.Nil(t, QuestionsFor("computer", "no_such_category"))

	mobile := QuestionsFor("mobile", "battery_issues")
	require.NotEmpty(t, mobile)
	assert.Equal(t, "battery_drain", mobile[0].Key)
}
