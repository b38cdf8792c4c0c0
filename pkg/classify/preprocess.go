package classify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Arabic letter folding applied before keyword matching, so variant
// spellings (hamza forms, taa marbuta) collapse to one canonical form.
var arabicFold = strings.NewReplacer(
	"أ", "ا", "إ", "ا", "آ", "ا", "ٱ", "ا",
	"ى", "ي", "ئ", "ي", "ؤ", "و", "ة", "ه", "گ", "ك",
)

var (
	urlPattern   = regexp.MustCompile(`https?://\S+|www\.\S+`)
	nonWord      = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// stripMarks removes combining marks, which covers both Latin diacritics
// and Arabic harakat.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var arabicStopwords = map[string]bool{
	"في": true, "من": true, "علي": true, "الي": true, "عن": true, "مع": true,
	"هذا": true, "هذه": true, "التي": true, "الذي": true, "كان": true,
	"قد": true, "لقد": true, "ما": true, "لا": true, "ان": true, "كل": true,
	"بعد": true, "قبل": true, "عند": true, "بين": true, "هو": true, "هي": true,
	"هم": true, "نحن": true, "انت": true, "انا": true, "ذلك": true, "تلك": true,
	"و": true, "او": true, "ثم": true, "لكن": true, "بل": true, "حتي": true,
	"منذ": true, "خلال": true, "حول": true, "ضد": true,
}

// Normalize lowercases, strips diacritics, folds Arabic letter variants,
// and removes URLs and punctuation, collapsing whitespace.
func Normalize(text string) string {
	text = strings.ToLower(text)
	if out, _, err := transform.String(stripMarks, text); err == nil {
		text = out
	}
	text = arabicFold.Replace(text)
	text = urlPattern.ReplaceAllString(text, " ")
	text = nonWord.ReplaceAllString(text, " ")
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}

// Preprocess normalizes the text and drops Arabic stopwords. English
// stopwords are left alone: the keyword lists never contain them, so they
// only cost a few comparisons.
func Preprocess(text string) string {
	words := strings.Fields(Normalize(text))
	kept := words[:0]
	for _, w := range words {
		if !arabicStopwords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
