package types

// Score thresholds for the inference engine.
// These are heuristic values, not probabilistic.
const (
	// DefaultMinScore is the admission threshold for plain ranking queries:
	// at least half of a rule's conditions must hold.
	DefaultMinScore = 0.5

	// ForwardMinScore is the looser threshold used by forward chaining so
	// partial matches still surface as plausible hypotheses. It is applied
	// twice: to the structural match score and to the combined confidence.
	ForwardMinScore = 0.3

	// FallbackConfidence is reported when no rule fires and the generic
	// per-category advice is returned instead.
	FallbackConfidence = 0.5
)

// MaxAlternatives is how many runner-up diagnoses are kept after the
// primary one.
const MaxAlternatives = 2
