// Package readability computes the Flesch Reading Ease score for a
// block of text. The score is used as prompt context when composing
// meta descriptions; it is never persisted. Higher scores mean simpler
// text.
package readability

import (
	"html"
	"math"
	"regexp"
	"strings"
	"unicode"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script.*?</script>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style.*?</style>`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
	sentenceRe    = regexp.MustCompile(`[.!?]+`)
	nonLetterRe   = regexp.MustCompile(`[^a-z]`)
	vowelGroupRe  = regexp.MustCompile(`[aeiouy]+`)
)

// StripTags removes HTML/markup from s: script and style blocks are
// dropped wholly, remaining tags are removed, entities are decoded,
// and the result is trimmed.
func StripTags(s string) string {
	s = scriptBlockRe.ReplaceAllString(s, "")
	s = styleBlockRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// Score computes the Flesch Reading Ease value for text:
//
//	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//
// rounded to two decimal places. Markup is stripped first; if nothing
// remains the score is exactly 0. The function is pure and
// deterministic.
func Score(text string) float64 {
	text = StripTags(text)
	if text == "" {
		return 0.0
	}

	// Sentence count approximated by runs of terminal punctuation,
	// floored at 1 so the ratio below is always defined.
	sentences := len(sentenceRe.FindAllString(text, -1))
	if sentences < 1 {
		sentences = 1
	}

	words := countWords(text)
	syllables := estimateSyllables(text)

	asl := float64(words) / float64(sentences)
	asw := float64(syllables) / math.Max(1, float64(words))

	score := 206.835 - 1.015*asl - 84.6*asw
	return math.Round(score*100) / 100
}

// countWords tokenizes text into words, treating letters, apostrophes,
// and hyphens as word characters and everything else as a separator.
func countWords(text string) int {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\'' && r != '-'
	})
	return len(fields)
}

// estimateSyllables estimates the total syllable count of text.
// Each whitespace-separated word is lowercased and stripped of
// non-letter characters; an empty cleaned word contributes nothing,
// otherwise its contiguous vowel groups (a, e, i, o, u, y) are counted
// with a floor of one syllable per word.
func estimateSyllables(text string) int {
	total := 0
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = nonLetterRe.ReplaceAllString(w, "")
		if w == "" {
			continue
		}
		groups := len(vowelGroupRe.FindAllString(w, -1))
		if groups < 1 {
			groups = 1
		}
		total += groups
	}
	return total
}
