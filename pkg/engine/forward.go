package engine

import (
	"strings"

	"go.uber.org/zap"

	"github.com/mrhapile/techtriage/pkg/types"
)

// Diagnose is the primary symptoms-to-diagnosis path. It resets session
// state, loads the device fact and caller-supplied symptoms into working
// memory, runs forward chaining, and always returns a well-formed result:
// either fired rules (Success true) or the generic per-category fallback
// (Success false). It never fails at runtime.
func (e *Engine) Diagnose(device, category string, symptoms types.Facts) types.DiagnosisResult {
	e.Reset()
	e.AddFact(types.ConditionDevice, types.StringValue(device))
	e.AddFacts(symptoms)
	e.tracef("Starting forward chaining...")

	// Stage one: structural match score must clear the forward threshold.
	matches := e.FindMatches(e.memory, device, category, types.ForwardMinScore)

	// Stage two: combined confidence (match score x authored confidence)
	// must clear the same threshold independently.
	var diagnoses []types.Diagnosis
	for _, m := range matches {
		combined := m.Result.Score * m.Rule.Confidence
		if combined < types.ForwardMinScore {
			continue
		}
		e.fired = append(e.fired, m.Rule)
		e.tracef("Fired rule: %s (confidence: %.2f)", m.Rule.ID, combined)
		diagnoses = append(diagnoses, types.Diagnosis{
			RuleID:      m.Rule.ID,
			Category:    m.Rule.Category,
			Cause:       m.Rule.Cause,
			CauseAr:     m.Rule.CauseIn("ar"),
			Solutions:   m.Rule.Solutions,
			SolutionsAr: m.Rule.SolutionsIn("ar"),
			Confidence:  combined,
			Matched:     m.Result.Matched,
			Explanation: e.Explain(m.Rule, m.Result.Matched),
		})
	}
	e.tracef("Forward chaining complete. Found %d diagnoses.", len(diagnoses))

	if len(diagnoses) == 0 {
		e.logger.Debug("no rule fired, using fallback",
			zap.String("device", device),
			zap.String("category", category),
			zap.Int("facts", len(e.memory)))
		return types.DiagnosisResult{
			Success:   false,
			Diagnosis: fallbackDiagnosis(category),
			Trace:     e.Trace(),
		}
	}

	e.logger.Debug("diagnosis complete",
		zap.String("device", device),
		zap.String("category", category),
		zap.String("primaryRule", diagnoses[0].RuleID),
		zap.Float64("confidence", diagnoses[0].Confidence))

	alternatives := diagnoses[1:min(len(diagnoses), 1+types.MaxAlternatives)]
	return types.DiagnosisResult{
		Success:      true,
		Diagnosis:    diagnoses[0],
		Alternatives: alternatives,
		Trace:        e.Trace(),
	}
}

// fallbackDiagnosis is the degraded-mode answer when nothing fires: a
// synthetic cause derived from the category and the static generic
// remediation list. The assistant must always answer, never come back
// empty-handed.
func fallbackDiagnosis(category string) types.Diagnosis {
	readable := strings.ReplaceAll(category, "_", " ")
	return types.Diagnosis{
		Category:    category,
		Cause:       "General " + readable + " issue",
		Solutions:   GenericSolutions(category),
		SolutionsAr: genericSolutionsAr(category),
		Confidence:  types.FallbackConfidence,
		Explanation: "Based on the symptoms provided, this appears to be a " + readable +
			" problem. Consider the general troubleshooting steps recommended.",
	}
}
