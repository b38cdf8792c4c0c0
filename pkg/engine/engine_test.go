package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhapile/techtriage/pkg/types"
)

func TestAddFactTracesAndStores(t *testing.T) {
	e := New(dustStore())
	e.AddFact("fan_noise", types.StringValue("yes"))
	e.AddFact("hot_surface", types.BoolValue(true))

	facts := e.Facts()
	assert.Len(t, facts, 2)
	assert.Equal(t, "yes", facts["fan_noise"].String())

	trace := e.Trace()
	require.Len(t, trace, 2)
	assert.Equal(t, "Added fact: fan_noise = yes", trace[0])
	assert.Equal(t, "Added fact: hot_surface = true", trace[1])
}

func TestFactsReturnsACopy(t *testing.T) {
	e := New(dustStore())
	e.AddFact("fan_noise", types.StringValue("yes"))

	facts := e.Facts()
	facts["fan_noise"] = types.StringValue("no")
	facts["extra"] = types.BoolValue(true)

	assert.Equal(t, "yes", e.Facts()["fan_noise"].String())
	assert.Len(t, e.Facts(), 1)
}

func TestResetClearsSession(t *testing.T) {
	e := New(dustStore())
	e.AddFact("fan_noise", types.StringValue("yes"))
	require.NotEmpty(t, e.Trace())

	e.Reset()
	assert.Empty(t, e.Facts())
	assert.Empty(t, e.Trace())
}

func TestAddFactsSortedTraceOrder(t *testing.T) {
	e := New(dustStore())
	e.AddFacts(types.Facts{
		"zeta":  types.StringValue("1"),
		"alpha": types.StringValue("2"),
		"mid":   types.StringValue("3"),
	})

	trace := e.Trace()
	require.Len(t, trace, 3)
	assert.Contains(t, trace[0], "alpha")
	assert.Contains(t, trace[1], "mid")
	assert.Contains(t, trace[2], "zeta")
}
