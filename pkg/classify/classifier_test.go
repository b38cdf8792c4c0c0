package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEnglish(t *testing.T) {
	c := New()

	res := c.Classify("My laptop keeps overheating and gets very hot")
	assert.Equal(t, "overheating", res.Category)
	assert.Greater(t, res.Confidence, 0.9)
}

func TestClassifyPicksStrongestCategory(t *testing.T) {
	c := New()

	// Battery evidence (battery + drains) outweighs the single screen hit.
	res := c.Classify("the screen is fine but the battery drains overnight")
	assert.Equal(t, "battery_issues", res.Category)
	assert.Greater(t, res.Scores["battery_issues"], res.Scores["screen_problems"])

	sum := 0.0
	for _, s := range res.Scores {
		sum += s
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestClassifyArabic(t *testing.T) {
	c := New()

	res := c.Classify("الجهاز يسخن بسرعه")
	assert.Equal(t, "overheating", res.Category)
	assert.Greater(t, res.Confidence, 0.0)
}

func TestClassifyArabicDefiniteArticle(t *testing.T) {
	c := New()

	// "البطاريه" should count as the keyword "بطاريه".
	res := c.Classify("البطاريه ضعيفه جدا")
	assert.Equal(t, "battery_issues", res.Category)
}

func TestClassifyPhraseKeyword(t *testing.T) {
	c := New()

	res := c.Classify("i keep getting a blue screen error")
	assert.Equal(t, "hardware_failure", res.Category)
}

func TestClassifyNoEvidence(t *testing.T) {
	c := New()

	res := c.Classify("qwerty zxcvb asdf")
	assert.Equal(t, DefaultCategory, res.Category)
	assert.Zero(t, res.Confidence)
}

func TestClassifyDeterministic(t *testing.T) {
	c := New()
	first := c.Classify("wifi keeps disconnecting and the signal is weak")
	second := c.Classify("wifi keeps disconnecting and the signal is weak")
	assert.Equal(t, first, second)
	assert.Equal(t, "network_issues", first.Category)
}

func TestCategories(t *testing.T) {
	cats := New().Categories()
	require.Len(t, cats, 10)
	assert.Contains(t, cats, "overheating")
	assert.Contains(t, cats, "battery_issues")
	assert.True(t, sortedStrings(cats))
}

func sortedStrings(ss []string) bool {
	for i := 1; i < len(ss); i++ {
		if ss[i-1] > ss[i] {
			return false
		}
	}
	return true
}
