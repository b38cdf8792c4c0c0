// Package i18n holds the English/Arabic string tables for the assistant.
// Lookups fall back to English, then to the key itself, so a missing
// translation never breaks a conversation.
package i18n

// Supported language codes.
const (
	LangEnglish = "en"
	LangArabic  = "ar"

	DefaultLanguage = LangEnglish
)

// IsRTL reports whether the language renders right-to-left.
func IsRTL(lang string) bool { return lang == LangArabic }

// Supported reports whether the language code is one we have tables for.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

// T returns the translated text for a key, falling back to English and
// finally to the key itself.
func T(key, lang string) string {
	if table, ok := translations[lang]; ok {
		if text, ok := table[key]; ok {
			return text
		}
	}
	if text, ok := translations[LangEnglish][key]; ok {
		return text
	}
	return key
}

// Option translates a symptom answer option value for display.
func Option(option, lang string) string {
	if table, ok := optionTranslations[lang]; ok {
		if text, ok := table[option]; ok {
			return text
		}
	}
	return option
}

// CategoryName returns the display name for a problem category.
func CategoryName(category, lang string) string {
	if table, ok := categoryNames[lang]; ok {
		if text, ok := table[category]; ok {
			return text
		}
	}
	if text, ok := categoryNames[LangEnglish][category]; ok {
		return text
	}
	return category
}
