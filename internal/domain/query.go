package domain

import "time"

// SortField selects the ordering of repository results.
type SortField string

const (
	// SortWordIndex orders by the stable per-origin ordinal (default).
	SortWordIndex SortField = "wordIndex"
	// SortPhonetic orders by the canonical transliterated form.
	SortPhonetic SortField = "phonetic"
	// SortWordLength orders by the character length of the phonetic form.
	SortWordLength SortField = "wordLength"
	// SortRelevance orders by the backend full-text metric. Only the
	// full-text retrieval path supports it; the pattern path falls back
	// to SortWordIndex.
	SortRelevance SortField = "relevance"
)

// Sort directions accepted by RepositoryQuery and SearchOptions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// RepositoryQuery carries the search, filter, pagination and sort parameters
// consumed by the repository. Limit and Offset are required; every filter
// field is optional (nil / empty means "unset"). It is built by the filter
// service and enriched by the search service with the query text and its
// script variants.
type RepositoryQuery struct {
	// QueryText is the raw (trimmed) user query. Empty means "no text match".
	QueryText string
	// Variants are additional script/transliteration renderings of QueryText
	// produced by query normalization. The full-text path matches any of them.
	Variants []string

	Origins       []string
	Language      *string
	WordLengthMin *int
	WordLengthMax *int
	HasAudio      *bool
	HasAttributes *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time

	SortBy        SortField
	SortDirection string

	Limit  int
	Offset int

	// MinTermLen is the minimum trimmed query length (in runes) for which the
	// full-text path is used; shorter queries are served by pattern matching.
	// Zero selects the default of 2.
	MinTermLen int
}

// Pagination is the offset/limit window requested by the caller. The window
// is not a cursor: concurrent writes between two paginated calls can shift
// result windows, which is an accepted limitation of the design.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// SearchOptions is the input of the public search operation: the free-text
// query, the user filter state, the requested ordering, and the page window.
type SearchOptions struct {
	QueryText     string     `json:"query_text"`
	Filters       UserFilter `json:"filters"`
	SortBy        string     `json:"sort_by"`        // relevance | alphabetical | wordLength
	SortDirection string     `json:"sort_direction"` // asc | desc
	Pagination    Pagination `json:"pagination"`
}
