package script

import "regexp"

// Span is one word found by WordBoundaries. Start and End are byte offsets
// into the original string (End exclusive), so spans can be used to slice it.
type Span struct {
	Text   string
	Start  int
	End    int
	Script Script
}

// Per-script word patterns. Go has no locale-aware segmenter in the standard
// library or x/text, so segmentation is regex-based throughout: one character
// block per script, with Latin words allowing internal hyphens/apostrophes.
// Indic runs include the combining signs of their block (matras, virama,
// anusvara) so a cluster like "स्ते" stays one word.
var wordRE = regexp.MustCompile(`[\x{0900}-\x{097F}]+|[\x{0C00}-\x{0C7F}]+|[A-Za-z\x{00C0}-\x{024F}\x{1E00}-\x{1EFF}]+(?:['-][A-Za-z\x{00C0}-\x{024F}\x{1E00}-\x{1EFF}]+)*`)

// WordBoundaries segments text into word spans, classifying each span by
// script. Non-word characters (spaces, punctuation, digits) fall between
// spans and are not returned; Highlight re-adds them as gap segments.
func WordBoundaries(text string) []Span {
	idx := wordRE.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}
	spans := make([]Span, 0, len(idx))
	for _, in := range idx {
		w := text[in[0]:in[1]]
		spans = append(spans, Span{
			Text:   w,
			Start:  in[0],
			End:    in[1],
			Script: Detect(w),
		})
	}
	return spans
}
