package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// qualifierPatterns match parenthesized or bracketed suffixes that describe a
// release variant rather than the song itself. Input is lowercased before
// these run, so the patterns only need lowercase forms.
var qualifierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\s*\([^)]*(?:remaster|remix|edit|version|mix)[^)]*\)`),
	regexp.MustCompile(`\s*\([^)]*\d{4}[^)]*\)`),
	regexp.MustCompile(`\s*\[[^\]]*(?:remaster|remix|edit|version|mix)[^\]]*\]`),
	regexp.MustCompile(`\s*\[[^\]]*\d{4}[^\]]*\]`),
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// symbolReplacer unifies symbols and German specials. Umlauts are matched in
// their decomposed form (base letter + U+0308 combining diaeresis) because
// Normalize applies NFKD before substitution.
var symbolReplacer = strings.NewReplacer(
	"&", "and",
	"+", "and",
	"a\u0308", "ae",
	"o\u0308", "oe",
	"u\u0308", "ue",
	"\u00df", "ss",
)

// Normalize canonicalizes text for similarity comparison. Empty input yields
// an empty string; the function never fails and is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFKD.String(text)
	text = strings.TrimSpace(strings.ToLower(text))

	for _, pattern := range qualifierPatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	text = symbolReplacer.Replace(text)
	text = stripCombiningMarks(text)

	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// stripCombiningMarks drops the combining marks left over after NFKD, turning
// accented vowels into their plain ASCII base letters.
func stripCombiningMarks(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
