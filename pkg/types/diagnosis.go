package types

// MatchResult is the output of scoring one rule against a fact set.
// Every condition key appears in exactly one of Matched/Unmatched, in the
// rule's authored order. Score is |matched| / |conditions|, or 0 for a
// rule without conditions.
type MatchResult struct {
	Score     float64  `json:"score"`
	Matched   []string `json:"matched"`
	Unmatched []string `json:"unmatched"`
}

// RuleMatch pairs a catalog rule with its match result for ranking.
type RuleMatch struct {
	Rule   *Rule       `json:"rule"`
	Result MatchResult `json:"result"`
}

// Diagnosis is one ranked conclusion: the resolved cause and solutions of
// a fired rule, its combined confidence, and a generated explanation.
// RuleID is empty for the fallback diagnosis.
type Diagnosis struct {
	RuleID      string   `json:"ruleId,omitempty"`
	Category    string   `json:"category"`
	Cause       string   `json:"cause"`
	CauseAr     string   `json:"causeAr,omitempty"`
	Solutions   []string `json:"solutions"`
	SolutionsAr []string `json:"solutionsAr,omitempty"`
	Confidence  float64  `json:"confidence"`
	Matched     []string `json:"matchedConditions,omitempty"`
	Explanation string   `json:"explanation"`
}

// DiagnosisResult is the complete answer to one diagnose call. Success is
// false when no rule fired and the generic fallback was used; the result
// is still fully populated so callers always have something to show.
type DiagnosisResult struct {
	Success      bool        `json:"success"`
	Diagnosis    Diagnosis   `json:"diagnosis"`
	Alternatives []Diagnosis `json:"alternativeDiagnoses"`
	Trace        []string    `json:"inferenceTrace"`
}

// Verification is the outcome of a backward-chaining hypothesis check.
// MissingFacts is empty when proven, and lists what is still unknown or
// contradicted otherwise.
type Verification struct {
	Proven       bool     `json:"proven"`
	MissingFacts []string `json:"missingFacts"`
}
