package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConditionsJSONKeepsSourceOrder(t *testing.T) {
	src := `{"device":"computer","fan_noise":"yes","hot_surface":true}`
	var c Conditions
	require.NoError(t, json.Unmarshal([]byte(src), &c))

	assert.Equal(t, []string{"device", "fan_noise", "hot_surface"}, c.Keys())
	assert.Equal(t, 3, c.Len())

	v, ok := c.Get("hot_surface")
	require.True(t, ok)
	assert.Equal(t, KindBool, v.Kind())
	assert.True(t, v.Bool())

	// Round trip preserves the same order.
	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestConditionsYAMLKeepsSourceOrder(t *testing.T) {
	src := "device: mobile\nscreen_cracked: true\ntouch_response: \"no\"\n"
	var c Conditions
	require.NoError(t, yaml.Unmarshal([]byte(src), &c))

	assert.Equal(t, []string{"device", "screen_cracked", "touch_response"}, c.Keys())

	v, ok := c.Get("touch_response")
	require.True(t, ok)
	assert.Equal(t, KindString, v.Kind())
	assert.Equal(t, "no", v.String())
}

func TestConditionsRejectNumericValues(t *testing.T) {
	var c Conditions
	err := json.Unmarshal([]byte(`{"battery_level":42}`), &c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"battery_level"`)
}

func TestConditionsSetReplacesWithoutReordering(t *testing.T) {
	var c Conditions
	c.Set("a", StringValue("1"))
	c.Set("b", StringValue("2"))
	c.Set("a", StringValue("3"))

	assert.Equal(t, []string{"a", "b"}, c.Keys())
	v, _ := c.Get("a")
	assert.Equal(t, "3", v.String())
}

func TestRuleLocaleFallback(t *testing.T) {
	r := Rule{
		Cause:     "Battery degradation",
		CauseAr:   "تدهور البطارية",
		Solutions: []string{"Replace the battery"},
	}

	assert.Equal(t, "تدهور البطارية", r.CauseIn("ar"))
	assert.Equal(t, "Battery degradation", r.CauseIn("en"))

	// No Arabic solutions authored, so Arabic falls back to English.
	assert.Equal(t, []string{"Replace the battery"}, r.SolutionsIn("ar"))

	bare := Rule{Cause: "Loose cable"}
	assert.Equal(t, "Loose cable", bare.CauseIn("ar"))
}
