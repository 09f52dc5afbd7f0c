// Package relevance implements the standalone, explainable relevance scorer.
// It complements the search service's inline scoring when a caller needs a
// finer-grained breakdown for a single candidate: per-component scores, the
// clamped total, and a coarse quality category.
//
// The scorer is a pure function over its context; it does no I/O and no
// logging, and is safe for concurrent use.
package relevance

import (
	"unicode/utf8"

	"github.com/sabdakosha/lexicon-backend/internal/script"
)

// Component weights and thresholds of the scoring model.
const (
	maxTextScore     = 40
	defaultTextScore = 20 // used when no backend metric is available
	exactBonus       = 50
	prefixBonus      = 30
	positionBonusTop = 10 // candidate within the first 10% of the corpus
	positionBonusMid = 5  // candidate within the first 30%
	lengthPenalty    = -5
	scriptBonus      = 5

	// A candidate longer than both caps is considered a poor display match.
	lengthRatioCap = 3
	lengthRuneCap  = 20
)

// Quality categories derived from the total score.
const (
	CategoryExcellent = "excellent" // >= 90
	CategoryGood      = "good"      // >= 70
	CategoryFair      = "fair"      // >= 50
	CategoryPoor      = "poor"
)

// Context carries everything known about one candidate at scoring time.
// Term and Word are required; the rest is optional and simply skips the
// corresponding component when absent.
type Context struct {
	// Term is the user's search term.
	Term string
	// Word is the candidate headword rendering being scored.
	Word string
	// Phonetic is the candidate's canonical transliterated form.
	Phonetic string
	// TextScore is the backend full-text metric normalized into [0,1]
	// (higher is better). Nil when the pattern path produced the candidate.
	TextScore *float64
	// WordIndex / TotalWords locate the candidate in its corpus for the
	// position bonus. Both must be set for the bonus to apply.
	WordIndex  *int
	TotalWords *int
}

// Breakdown is the per-component result of scoring one candidate.
type Breakdown struct {
	TextScore        int    `json:"text_score"`
	ExactMatchBonus  int    `json:"exact_match_bonus"`
	PrefixMatchBonus int    `json:"prefix_match_bonus"`
	PositionBonus    int    `json:"position_bonus"`
	LengthPenalty    int    `json:"length_penalty"`
	ScriptBonus      int    `json:"script_bonus"`
	Total            int    `json:"total"` // clamped to [0,100]
	Category         string `json:"category"`
}

// Score computes the explainable relevance breakdown for one candidate.
func Score(ctx Context) Breakdown {
	var b Breakdown

	b.TextScore = defaultTextScore
	if ctx.TextScore != nil {
		s := *ctx.TextScore
		if s < 0 {
			s = 0
		}
		if s > 1 {
			s = 1
		}
		b.TextScore = int(s * maxTextScore)
	}

	term := script.NormalizeForComparison(ctx.Term)
	word := script.NormalizeForComparison(ctx.Word)
	phonetic := script.NormalizeForComparison(ctx.Phonetic)

	switch {
	case term != "" && (word == term || (phonetic != "" && phonetic == term)):
		b.ExactMatchBonus = exactBonus
	case term != "" && (hasPrefix(word, term) || hasPrefix(phonetic, term)):
		b.PrefixMatchBonus = prefixBonus
	}

	if ctx.WordIndex != nil && ctx.TotalWords != nil && *ctx.TotalWords > 0 {
		frac := float64(*ctx.WordIndex) / float64(*ctx.TotalWords)
		switch {
		case frac < 0.10:
			b.PositionBonus = positionBonusTop
		case frac < 0.30:
			b.PositionBonus = positionBonusMid
		}
	}

	termLen := utf8.RuneCountInString(ctx.Term)
	wordLen := utf8.RuneCountInString(ctx.Word)
	if termLen > 0 && wordLen > lengthRatioCap*termLen && wordLen > lengthRuneCap {
		b.LengthPenalty = lengthPenalty
	}

	ts, ws := script.Detect(ctx.Term), script.Detect(ctx.Word)
	if ts == ws && ts != script.ScriptMixed && ts != script.ScriptUnknown {
		b.ScriptBonus = scriptBonus
	}

	total := b.TextScore + b.ExactMatchBonus + b.PrefixMatchBonus +
		b.PositionBonus + b.LengthPenalty + b.ScriptBonus
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	b.Total = total
	b.Category = Categorize(total)
	return b
}

// Categorize maps a total score onto a coarse quality bucket.
func Categorize(total int) string {
	switch {
	case total >= 90:
		return CategoryExcellent
	case total >= 70:
		return CategoryGood
	case total >= 50:
		return CategoryFair
	default:
		return CategoryPoor
	}
}

func hasPrefix(s, prefix string) bool {
	return s != "" && len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
