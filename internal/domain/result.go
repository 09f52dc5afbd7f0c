package domain

// MatchType classifies how a query matched an entry.
type MatchType string

const (
	MatchExact    MatchType = "exact"    // a word rendering or the phonetic form equals the query
	MatchPrefix   MatchType = "prefix"   // a word rendering or the phonetic form starts with the query
	MatchPhonetic MatchType = "phonetic" // only the phonetic form contains the query
	MatchFuzzy    MatchType = "fuzzy"    // substring or full-text match elsewhere
)

// HighlightSegment is one span of a rendering classified against the query
// term. Segments are ordered and cover the whole source string, so callers
// can reconstruct the original text losslessly. Match is one of "exact",
// "prefix", "contains" or "none" (gaps and non-matching words are "none").
type HighlightSegment struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Match string `json:"match"`
}

// SearchMetadata is the explainable breakdown attached to each result item.
type SearchMetadata struct {
	// QueryScript is the detected script of the query text.
	QueryScript string `json:"query_script"`
	// MatchedLanguage is the language of the first word rendering.
	MatchedLanguage string `json:"matched_language"`
	// Component scores of the inline relevance calculation.
	TextScore   int `json:"text_score"`
	PrefixBonus int `json:"prefix_bonus"`
	ExactBonus  int `json:"exact_bonus"`
}

// SearchResultItem is a dictionary entry paired with its relevance score,
// match classification, optional highlight segments per rendering, and the
// score breakdown.
type SearchResultItem struct {
	Entry          DictionaryEntry               `json:"entry"`
	RelevanceScore int                           `json:"relevance_score"` // in [0,100]
	MatchType      MatchType                     `json:"match_type"`
	Highlights     map[string][]HighlightSegment `json:"highlights,omitempty"`
	SearchMetadata SearchMetadata                `json:"search_metadata"`
}

// SearchResult is a page of scored results.
//
// Invariant: HasMore == (offset + len(Results) < Total); NextOffset is set
// only when HasMore is true.
type SearchResult struct {
	Results    []SearchResultItem `json:"results"`
	Total      int64              `json:"total"`
	HasMore    bool               `json:"has_more"`
	NextOffset *int               `json:"next_offset,omitempty"`
}

// EntryPage is the repository-level page shape shared by both retrieval
// strategies, before scoring.
type EntryPage struct {
	Data    []DictionaryEntry
	Total   int64
	HasMore bool
}
