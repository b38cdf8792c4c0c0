package chat

import "strings"

// Keyword lists for device detection, English and Arabic. Matching is
// permissive on purpose; the rule store tolerates odd device strings
// anyway, but a clean "computer"/"mobile" keeps rule filtering sharp.
var (
	computerKeywords = []string{
		"computer", "pc", "laptop", "desktop", "windows", "mac", "notebook",
		"كمبيوتر", "لابتوب", "حاسوب", "كومبيوتر", "لاب توب", "حاسب",
	}
	mobileKeywords = []string{
		"mobile", "phone", "smartphone", "iphone", "android", "tablet", "ipad",
		"جوال", "هاتف", "موبايل", "تلفون", "ايفون", "اندرويد", "تابلت",
	}
)

func detectDevice(input string) (string, bool) {
	lower := strings.ToLower(input)
	for _, kw := range computerKeywords {
		if strings.Contains(lower, kw) {
			return "computer", true
		}
	}
	for _, kw := range mobileKeywords {
		if strings.Contains(lower, kw) {
			return "mobile", true
		}
	}
	return "", false
}

// Arabic answers are mapped to the canonical option values the rule
// conditions are authored in.
var answerAliases = map[string]string{
	"نعم":       "yes",
	"لا":        "no",
	"احيانا":    "sometimes",
	"أحيانا":    "sometimes",
	"أحيانًا":   "sometimes",
	"غير متأكد": "unsure",
	"مرتفع":     "high",
	"منخفض":     "low",
	"متوسط":     "medium",
	"طبيعي":     "normal",
	"كثير":      "many",
	"قليل":      "few",
	"سريع":      "fast",
	"بطيء":      "slow",
}

// optionAllowed reports whether a canonical answer is one of the
// question's option values.
func optionAllowed(options []string, answer string) bool {
	for _, opt := range options {
		if strings.EqualFold(opt, answer) {
			return true
		}
	}
	return false
}

// canonicalAnswer normalizes a symptom answer; empty input means the
// question was skipped.
func canonicalAnswer(input string) string {
	answer := strings.ToLower(strings.TrimSpace(input))
	if answer == "" {
		return ""
	}
	if canonical, ok := answerAliases[answer]; ok {
		return canonical
	}
	return answer
}
