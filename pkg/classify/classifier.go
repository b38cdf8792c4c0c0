// Package classify maps a free-text problem description (English or
// Arabic) to a problem category with a confidence score. It is the local
// implementation of the classifier collaborator the inference engine
// consumes; the engine itself treats the predicted category as ground
// truth and never re-validates it.
package classify

import (
	"sort"
	"strings"
)

// DefaultCategory is predicted when no keyword matches at all. The
// diagnostic engine always answers regardless, so a weak default beats
// refusing to classify.
const DefaultCategory = "hardware_failure"

// Result is a classification outcome: the winning category, its share of
// the total keyword evidence, and the per-category score distribution.
type Result struct {
	Category   string             `json:"category"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
}

// Classifier scores preprocessed text against weighted bilingual keyword
// lists. It is stateless and safe for concurrent use.
type Classifier struct{}

// New returns a ready classifier.
func New() *Classifier { return &Classifier{} }

// Categories returns the sorted category labels the classifier can emit.
func (c *Classifier) Categories() []string {
	out := make([]string, 0, len(categoryKeywords))
	for cat := range categoryKeywords {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Classify predicts the problem category for a free-text description.
func (c *Classifier) Classify(text string) Result {
	clean := Preprocess(text)
	padded := " " + clean + " "

	scores := make(map[string]float64, len(categoryKeywords))
	total := 0.0
	for category, keywords := range categoryKeywords {
		score := 0.0
		for _, kw := range keywords {
			// Arabic nouns usually arrive with the definite article
			// attached, so "ال"+term counts as the same keyword.
			if strings.Contains(padded, " "+kw.term+" ") ||
				strings.Contains(padded, " ال"+kw.term+" ") {
				score += kw.weight
			}
		}
		scores[category] = score
		total += score
	}

	if total == 0 {
		return Result{Category: DefaultCategory, Scores: scores}
	}

	// Normalize to shares and pick the winner; sorted iteration keeps
	// ties deterministic.
	best := ""
	bestScore := -1.0
	cats := make([]string, 0, len(scores))
	for cat := range scores {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		scores[cat] /= total
		if scores[cat] > bestScore {
			best, bestScore = cat, scores[cat]
		}
	}

	return Result{Category: best, Confidence: bestScore, Scores: scores}
}
