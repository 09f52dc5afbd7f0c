package script

import "strings"

// Match kinds produced by Highlight.
const (
	MatchKindExact    = "exact"
	MatchKindPrefix   = "prefix"
	MatchKindContains = "contains"
	MatchKindNone     = "none"
)

// Segment is one piece of a highlighted string. Segments are contiguous and
// ordered; concatenating their Text fields reproduces the input exactly.
// Word segments carry the match classification of the word against the term;
// gap segments (whitespace, punctuation) are always MatchKindNone.
type Segment struct {
	Text  string
	Start int
	End   int
	Match string
}

// Highlight walks the word boundaries of text and classifies every word as
// exact, prefix, contains or none relative to term. The returned segments
// include the non-word gaps, so the original text can be reconstructed
// losslessly. An empty term yields a single none segment covering the text.
func Highlight(text, term string, caseSensitive bool) []Segment {
	if text == "" {
		return nil
	}
	cmp := func(s string) string { return s }
	if !caseSensitive {
		cmp = strings.ToLower
		term = strings.ToLower(term)
	}
	if strings.TrimSpace(term) == "" {
		return []Segment{{Text: text, Start: 0, End: len(text), Match: MatchKindNone}}
	}

	var segs []Segment
	pos := 0
	appendGap := func(to int) {
		if to > pos {
			segs = append(segs, Segment{Text: text[pos:to], Start: pos, End: to, Match: MatchKindNone})
		}
	}
	for _, sp := range WordBoundaries(text) {
		appendGap(sp.Start)
		segs = append(segs, Segment{
			Text:  sp.Text,
			Start: sp.Start,
			End:   sp.End,
			Match: classifyWord(cmp(sp.Text), term),
		})
		pos = sp.End
	}
	appendGap(len(text))
	return segs
}

// classifyWord returns the strongest match kind of word against term.
func classifyWord(word, term string) string {
	switch {
	case word == term:
		return MatchKindExact
	case strings.HasPrefix(word, term):
		return MatchKindPrefix
	case strings.Contains(word, term):
		return MatchKindContains
	default:
		return MatchKindNone
	}
}
