package script

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransform decomposes to NFD and strips combining diacritical marks, so
// that "ā" and "a" (or "ṛ" and "r") compare equal. Note this also strips
// Indic matras, which are combining marks too; diacritic folding is only
// meaningful for Roman transliterations and is applied by callers that
// compare romanized forms.
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeForComparison returns a folded form of s for diacritic-insensitive
// equality checks: NFD-normalized, combining marks removed, lowercased.
func NormalizeForComparison(s string) string {
	out, _, err := transform.String(foldTransform, s)
	if err != nil {
		// The chain cannot fail on valid UTF-8; fall back to lowercasing.
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// EqualFold reports whether a and b are equal under NormalizeForComparison.
func EqualFold(a, b string) bool {
	return NormalizeForComparison(a) == NormalizeForComparison(b)
}
