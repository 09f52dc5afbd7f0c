// Package repo implements the data access layer over the SQLite document
// store. This file provides the two retrieval strategies of the search core:
// pattern matching over word renderings (FindWords) and the full-text
// pipeline against the FTS5 mirror (AggregateSearch), plus counting and
// unique lookup.
//
// Failure semantics: backend errors propagate unmodified to the caller.
// There are no retries at this layer; cancellation and timeouts are the
// caller's responsibility via the context carried by the *gorm.DB session.
package repo

import (
	"context"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/sabdakosha/lexicon-backend/internal/domain"
)

// DefaultMinTermLen is the minimum trimmed query length (runes) served by
// the full-text path. FTS indexes are unreliable and expensive for 0–1
// character terms, so shorter queries fall back to pattern matching.
const DefaultMinTermLen = 2

// FindWords retrieves entries whose word renderings contain the query text
// (case-insensitive substring over word[].value, original query or any
// script variant), applying all filters, sorting and pagination. It is the
// pattern-based retrieval strategy; relevance sorting is not supported here
// and silently degrades to the word-index order.
func FindWords(ctx context.Context, db *gorm.DB, q domain.RepositoryQuery) (domain.EntryPage, error) {
	total, err := CountWords(ctx, db, q)
	if err != nil {
		return domain.EntryPage{}, err
	}

	var entries []domain.DictionaryEntry
	tx := applyFilters(db.WithContext(ctx).Model(&domain.DictionaryEntry{}), q)
	tx = applyFieldSort(tx, q)
	if err := tx.Offset(q.Offset).Limit(q.Limit).Find(&entries).Error; err != nil {
		return domain.EntryPage{}, err
	}
	return page(entries, total, q.Offset), nil
}

// CountWords returns the number of entries matching the query's text and
// filters, ignoring pagination and sort.
func CountWords(ctx context.Context, db *gorm.DB, q domain.RepositoryQuery) (int64, error) {
	var total int64
	tx := applyFilters(db.WithContext(ctx).Model(&domain.DictionaryEntry{}), q)
	err := tx.Count(&total).Error
	return total, err
}

// AggregateSearch runs the full-text retrieval pipeline: an FTS match over
// the flattened entry text combined with the regular filters, ordered either
// by the backend relevance metric (bm25, best first, word index as tiebreak)
// or by a plain field sort, with a two-pass count+fetch.
//
// Queries shorter than the minimum term length delegate to FindWords.
func AggregateSearch(ctx context.Context, db *gorm.DB, q domain.RepositoryQuery) (domain.EntryPage, error) {
	minLen := q.MinTermLen
	if minLen <= 0 {
		minLen = DefaultMinTermLen
	}
	trimmed := strings.TrimSpace(q.QueryText)
	if utf8.RuneCountInString(trimmed) < minLen {
		return FindWords(ctx, db, q)
	}

	match := buildMatchExpr(trimmed, q.Variants)

	base := func() *gorm.DB {
		tx := db.WithContext(ctx).
			Table("entries_fts").
			Joins("JOIN entries ON entries.id = entries_fts.entry_id").
			Where("entries_fts MATCH ?", match)
		return applyScalarFilters(tx, q)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return domain.EntryPage{}, err
	}

	// Fetch ids in final order first; loading the full documents through the
	// model query keeps GORM's JSON serializers in play for the list columns.
	type hit struct {
		EntryID string
	}
	var hits []hit
	tx := base().Select("entries_fts.entry_id AS entry_id")
	if q.SortBy == domain.SortRelevance || q.SortBy == "" {
		tx = tx.Order("bm25(entries_fts) ASC, entries.word_index ASC")
	} else {
		tx = applyFieldSort(tx, q)
	}
	if err := tx.Offset(q.Offset).Limit(q.Limit).Scan(&hits).Error; err != nil {
		return domain.EntryPage{}, err
	}
	if len(hits) == 0 {
		return domain.EntryPage{Data: []domain.DictionaryEntry{}, Total: total, HasMore: int64(q.Offset) < total}, nil
	}

	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.EntryID
	}
	var loaded []domain.DictionaryEntry
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&loaded).Error; err != nil {
		return domain.EntryPage{}, err
	}

	// Restore FTS ordering, which the IN-load does not preserve.
	byID := make(map[string]domain.DictionaryEntry, len(loaded))
	for _, e := range loaded {
		byID[e.ID] = e
	}
	entries := make([]domain.DictionaryEntry, 0, len(ids))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			entries = append(entries, e)
		}
	}
	return page(entries, total, q.Offset), nil
}

// FindByID fetches a single entry. Missing entries surface as
// gorm.ErrRecordNotFound, which the service layer maps to its own sentinel.
func FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.DictionaryEntry, error) {
	var e domain.DictionaryEntry
	if err := db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// page assembles the shared result shape and its HasMore invariant.
func page(entries []domain.DictionaryEntry, total int64, offset int) domain.EntryPage {
	if entries == nil {
		entries = []domain.DictionaryEntry{}
	}
	return domain.EntryPage{
		Data:    entries,
		Total:   total,
		HasMore: int64(offset+len(entries)) < total,
	}
}

// applyFilters adds the pattern-path text predicate plus all scalar filters.
func applyFilters(tx *gorm.DB, q domain.RepositoryQuery) *gorm.DB {
	if t := strings.TrimSpace(q.QueryText); t != "" {
		terms := append([]string{t}, q.Variants...)
		var (
			conds []string
			args  []any
		)
		for _, term := range terms {
			conds = append(conds,
				`EXISTS (SELECT 1 FROM json_each(entries.words) jw
				 WHERE lower(json_extract(jw.value, '$.value')) LIKE '%' || ? || '%' ESCAPE '\')`)
			args = append(args, escapeLike(strings.ToLower(term)))
		}
		tx = tx.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	return applyScalarFilters(tx, q)
}

// escapeLike neutralizes LIKE wildcards in user text so the pattern path
// keeps its plain-substring contract. Backslash is the ESCAPE character.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}

// applyScalarFilters adds the non-text filters. Column references are
// qualified with the entries table so the same fragments work in both the
// plain and the FTS-joined query.
func applyScalarFilters(tx *gorm.DB, q domain.RepositoryQuery) *gorm.DB {
	if len(q.Origins) > 0 {
		tx = tx.Where("entries.origin IN ?", q.Origins)
	}
	if q.Language != nil {
		tx = tx.Where(
			`EXISTS (SELECT 1 FROM json_each(entries.words) jl
			 WHERE json_extract(jl.value, '$.language') = ?)`, *q.Language)
	}
	// Length bounds compare the phonetic form by character count.
	if q.WordLengthMin != nil {
		tx = tx.Where("length(entries.phonetic) >= ?", *q.WordLengthMin)
	}
	if q.WordLengthMax != nil {
		tx = tx.Where("length(entries.phonetic) <= ?", *q.WordLengthMax)
	}
	if q.HasAttributes != nil {
		if *q.HasAttributes {
			tx = tx.Where("entries.attributes IS NOT NULL AND json_array_length(entries.attributes) > 0")
		} else {
			tx = tx.Where("entries.attributes IS NULL OR json_array_length(entries.attributes) = 0")
		}
	}
	if q.HasAudio != nil {
		if *q.HasAudio {
			tx = tx.Where("json_extract(entries.source_data, '$.audio') IS NOT NULL")
		} else {
			tx = tx.Where("entries.source_data IS NULL OR json_extract(entries.source_data, '$.audio') IS NULL")
		}
	}
	if q.CreatedAfter != nil {
		tx = tx.Where("entries.created_at >= ?", *q.CreatedAfter)
	}
	if q.CreatedBefore != nil {
		tx = tx.Where("entries.created_at <= ?", *q.CreatedBefore)
	}
	return tx
}

// applyFieldSort orders by word index (default) or phonetic form. Relevance
// is not a field sort; callers on the pattern path fall back to word index.
func applyFieldSort(tx *gorm.DB, q domain.RepositoryQuery) *gorm.DB {
	dir := "ASC"
	if q.SortDirection == domain.SortDesc {
		dir = "DESC"
	}
	switch q.SortBy {
	case domain.SortPhonetic:
		return tx.Order("entries.phonetic COLLATE NOCASE " + dir + ", entries.word_index ASC")
	case domain.SortWordLength:
		return tx.Order("length(entries.phonetic) " + dir + ", entries.word_index ASC")
	default:
		return tx.Order("entries.word_index " + dir + ", entries.id ASC")
	}
}

// buildMatchExpr turns the query text and its script variants into an FTS5
// match expression: every whitespace-separated token becomes a quoted prefix
// phrase, all tokens OR-ed together. Quotes inside tokens are doubled per
// FTS5 string rules, so user input cannot inject operators.
func buildMatchExpr(text string, variants []string) string {
	var parts []string
	seen := map[string]struct{}{}
	for _, chunk := range append([]string{text}, variants...) {
		for _, tok := range strings.Fields(chunk) {
			tok = strings.ReplaceAll(tok, `"`, `""`)
			if tok == "" {
				continue
			}
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			parts = append(parts, `"`+tok+`"*`)
		}
	}
	return strings.Join(parts, " OR ")
}
