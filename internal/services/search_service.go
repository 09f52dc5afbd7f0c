// Package services – SearchService
//
// This file implements the search orchestration: it validates and converts
// the caller's filter state, expands the query across scripts, picks a
// retrieval strategy (full-text vs. pattern matching), scores every returned
// entry, optionally re-sorts by relevance, and wraps the outcome in a typed
// success/error envelope. No error escapes PerformSearch as a Go error;
// callers always receive a ServiceResponse.
package services

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sabdakosha/lexicon-backend/internal/domain"
	"github.com/sabdakosha/lexicon-backend/internal/filter"
	"github.com/sabdakosha/lexicon-backend/internal/repo"
	"github.com/sabdakosha/lexicon-backend/internal/script"
)

// EntryRepo defines the repository contract required by the search service.
// Implementations are responsible for querying the document store; they
// must propagate backend errors unmodified and must not retry.
type EntryRepo interface {
	// FindWords is the pattern-based retrieval strategy (case-insensitive
	// substring over word renderings).
	FindWords(ctx context.Context, db *gorm.DB, q domain.RepositoryQuery) (domain.EntryPage, error)

	// CountWords counts entries matching the query, ignoring pagination.
	CountWords(ctx context.Context, db *gorm.DB, q domain.RepositoryQuery) (int64, error)

	// AggregateSearch is the full-text retrieval strategy; it delegates to
	// FindWords for queries below the minimum term length.
	AggregateSearch(ctx context.Context, db *gorm.DB, q domain.RepositoryQuery) (domain.EntryPage, error)

	// FindByID fetches a single entry by primary key.
	FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.DictionaryEntry, error)
}

// Inline scoring weights (see calculateRelevance).
const (
	substringScore    = 10
	variantScore      = 5
	textScoreCap      = 40
	wordPrefixBonus   = 30
	phoneticPrefix    = 25
	wordExactBonus    = 30
	phoneticExact     = 25
	maxRelevanceScore = 100
)

// SearchService provides the public search operation over the lexicon.
type SearchService struct {
	// DB is the GORM handle used for retrieval.
	DB *gorm.DB
	// Repo is the entry repository used by this service.
	Repo EntryRepo

	// FullTextMinQuery is the minimum trimmed query length (runes) for the
	// full-text path; shorter queries use pattern matching.
	FullTextMinQuery int
	// DefaultPageSize / MaxPageSize bound the caller's pagination window.
	DefaultPageSize int
	MaxPageSize     int

	// Logger receives non-fatal diagnostics (skipped transliteration
	// variants, backend failures). Defaults to a no-op logger.
	Logger zerolog.Logger
}

// NewSearchService constructs a SearchService with sane pagination defaults.
func NewSearchService(db *gorm.DB, r EntryRepo) *SearchService {
	return &SearchService{
		DB:               db,
		Repo:             r,
		FullTextMinQuery: repo.DefaultMinTermLen,
		DefaultPageSize:  20,
		MaxPageSize:      100,
		Logger:           zerolog.Nop(),
	}
}

// PerformSearch executes one search request end to end. Validation errors
// and backend failures are both reported through the error envelope; the
// latter keep the stable "Search failed" message with the underlying cause
// in Details.
func (s *SearchService) PerformSearch(ctx context.Context, opts domain.SearchOptions) domain.ServiceResponse[domain.SearchResult] {
	if res := filter.Validate(opts.Filters); !res.Valid {
		msgs := make([]string, len(res.Errors))
		for i, e := range res.Errors {
			msgs[i] = e.Field + ": " + e.Message
		}
		return domain.Failure[domain.SearchResult](MsgInvalidFilters, strings.Join(msgs, "; "))
	}

	queryText := strings.TrimSpace(opts.QueryText)
	variants := normalizeScripts(queryText, s.Logger)

	q := filter.BuildQuery(opts.Filters, s.clampPagination(opts.Pagination), mapSortField(opts.SortBy), mapSortDirection(opts.SortDirection))
	q.QueryText = queryText
	q.Variants = variants
	q.MinTermLen = s.FullTextMinQuery

	var (
		pageRes  domain.EntryPage
		err      error
		fullText = utf8.RuneCountInString(queryText) >= s.minTermLen()
	)
	if fullText {
		pageRes, err = s.Repo.AggregateSearch(ctx, s.DB, q)
	} else {
		pageRes, err = s.Repo.FindWords(ctx, s.DB, q)
	}
	if err != nil {
		s.Logger.Error().Err(err).Str("query", queryText).Msg("search backend failure")
		observeSearch(fullText, 0, false)
		return domain.Failure[domain.SearchResult](MsgSearchFailed, err.Error())
	}

	items := make([]domain.SearchResultItem, len(pageRes.Data))
	for i := range pageRes.Data {
		items[i] = s.calculateRelevance(pageRes.Data[i], queryText, variants)
	}
	if q.SortBy == domain.SortRelevance {
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].RelevanceScore > items[b].RelevanceScore
		})
	}

	result := domain.SearchResult{
		Results: items,
		Total:   pageRes.Total,
		HasMore: pageRes.HasMore,
	}
	if pageRes.HasMore {
		next := q.Offset + len(items)
		result.NextOffset = &next
	}
	observeSearch(fullText, pageRes.Total, true)
	return domain.Success(result)
}

// calculateRelevance computes the inline 0–100 score, the match
// classification, highlight segments for the matching renderings, and the
// explainable metadata for one entry.
func (s *SearchService) calculateRelevance(entry domain.DictionaryEntry, query string, variants []string) domain.SearchResultItem {
	item := domain.SearchResultItem{
		Entry:     entry,
		MatchType: domain.MatchFuzzy,
		SearchMetadata: domain.SearchMetadata{
			QueryScript:     string(script.Detect(query)),
			MatchedLanguage: entry.PrimaryWord().Language,
		},
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return item
	}

	lowered := make([]string, 0, len(variants))
	for _, v := range variants {
		lowered = append(lowered, strings.ToLower(v))
	}

	// All searchable strings: word renderings, the phonetic form, glosses.
	words := make([]string, 0, len(entry.Words))
	for _, w := range entry.Words {
		words = append(words, strings.ToLower(w.Value))
	}
	phonetic := strings.ToLower(entry.Phonetic)
	searchable := append([]string{}, words...)
	searchable = append(searchable, phonetic)
	for _, d := range entry.Descriptions {
		searchable = append(searchable, strings.ToLower(d.Value))
	}

	textScore := 0
	for _, str := range searchable {
		if strings.Contains(str, q) {
			textScore += substringScore
		}
		for _, v := range lowered {
			if strings.Contains(str, v) {
				textScore += variantScore
				break
			}
		}
	}
	if textScore > textScoreCap {
		textScore = textScoreCap
	}

	prefixBonus := 0
	exactBonus := 0
	for _, w := range words {
		if w == q {
			exactBonus = wordExactBonus
		}
		if strings.HasPrefix(w, q) {
			prefixBonus = wordPrefixBonus
		}
	}
	if exactBonus == 0 && phonetic == q {
		exactBonus = phoneticExact
	}
	if prefixBonus == 0 && strings.HasPrefix(phonetic, q) {
		prefixBonus = phoneticPrefix
	}

	total := textScore + prefixBonus + exactBonus
	if total > maxRelevanceScore {
		total = maxRelevanceScore
	}
	item.RelevanceScore = total

	switch {
	case exactBonus > 0:
		item.MatchType = domain.MatchExact
	case prefixBonus > 0:
		item.MatchType = domain.MatchPrefix
	case strings.Contains(phonetic, q):
		item.MatchType = domain.MatchPhonetic
	}

	item.SearchMetadata.TextScore = textScore
	item.SearchMetadata.PrefixBonus = prefixBonus
	item.SearchMetadata.ExactBonus = exactBonus
	item.Highlights = highlightRenderings(entry, query)
	return item
}

// highlightRenderings computes highlight segments for every word rendering
// the query actually touches. Renderings with no match are omitted so the
// payload stays small for large entries.
func highlightRenderings(entry domain.DictionaryEntry, query string) map[string][]domain.HighlightSegment {
	var out map[string][]domain.HighlightSegment
	for _, w := range entry.Words {
		segs := script.Highlight(w.Value, query, false)
		matched := false
		for _, sg := range segs {
			if sg.Match != script.MatchKindNone {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if out == nil {
			out = make(map[string][]domain.HighlightSegment)
		}
		converted := make([]domain.HighlightSegment, len(segs))
		for i, sg := range segs {
			converted[i] = domain.HighlightSegment{
				Text:  sg.Text,
				Start: sg.Start,
				End:   sg.End,
				Match: sg.Match,
			}
		}
		out[w.Value] = converted
	}
	return out
}

// clampPagination applies defaults for missing or out-of-range windows.
func (s *SearchService) clampPagination(p domain.Pagination) domain.Pagination {
	def, max := s.DefaultPageSize, s.MaxPageSize
	if def <= 0 {
		def = 20
	}
	if max <= 0 {
		max = 100
	}
	if p.Limit <= 0 {
		p.Limit = def
	}
	if p.Limit > max {
		p.Limit = max
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

func (s *SearchService) minTermLen() int {
	if s.FullTextMinQuery > 0 {
		return s.FullTextMinQuery
	}
	return repo.DefaultMinTermLen
}

// mapSortField translates the boundary sort names onto repository fields.
func mapSortField(sortBy string) domain.SortField {
	switch sortBy {
	case "relevance":
		return domain.SortRelevance
	case "alphabetical":
		return domain.SortPhonetic
	case "wordLength":
		return domain.SortWordLength
	default:
		return domain.SortWordIndex
	}
}

func mapSortDirection(dir string) string {
	if dir == domain.SortDesc {
		return domain.SortDesc
	}
	return domain.SortAsc
}
