package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhapile/techtriage/pkg/types"
)

func TestParseFacts(t *testing.T) {
	facts, err := parseFacts([]string{
		"fan_noise=yes",
		"hot_surface=true",
		"charging=false",
		"battery_drain=fast",
	})
	require.NoError(t, err)
	require.Len(t, facts, 4)

	assert.Equal(t, types.KindString, facts["fan_noise"].Kind())
	assert.Equal(t, "yes", facts["fan_noise"].String())

	assert.Equal(t, types.KindBool, facts["hot_surface"].Kind())
	assert.True(t, facts["hot_surface"].Bool())

	assert.Equal(t, types.KindBool, facts["charging"].Kind())
	assert.False(t, facts["charging"].Bool())

	assert.Equal(t, "fast", facts["battery_drain"].String())
}

func TestParseFactsRejectsBadPairs(t *testing.T) {
	_, err := parseFacts([]string{"no-equals-sign"})
	require.Error(t, err)

	_, err = parseFacts([]string{"=value"})
	require.Error(t, err)
}

func TestParseFactsEmpty(t *testing.T) {
	facts, err := parseFacts(nil)
	require.NoError(t, err)
	assert.Empty(t, facts)
}
