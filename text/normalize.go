package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ligatureReplacer maps the ligature code points PDF extractors commonly
// leave behind. NFKC already decomposes them, but some extractors emit the
// raw glyphs before normalization applies, so both are handled explicitly.
var ligatureReplacer = strings.NewReplacer(
	"ﬁ", "fi",
	"ﬂ", "fl",
)

// Clean normalizes raw extracted text: NFKC Unicode normalization, ligature
// repair, whitespace-run collapse and trim. Empty input yields the empty
// string.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	s = ligatureReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// AllCaps reports whether s contains at least one cased letter and no
// lowercase letters. Digits and punctuation do not affect the answer.
func AllCaps(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasCased = true
		}
	}
	return hasCased
}

// IsDigits reports whether s is non-empty and consists entirely of digit
// runes.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// EndsWithAny reports whether s ends with any of the given suffixes.
func EndsWithAny(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
