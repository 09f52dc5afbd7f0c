package repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/sabdakosha/lexicon-backend/internal/domain"
)

func iptr(i int) *int   { return &i }
func bptr(b bool) *bool { return &b }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedFixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []domain.DictionaryEntry{
		{
			ID:        "e-namaste",
			Origin:    "mw",
			WordIndex: 1,
			Words: []domain.WordRendering{
				{Language: "sa", Value: "नमस्ते"},
				{Language: "sa-Latn", Value: "namaste"},
			},
			Descriptions: []domain.Gloss{{Language: "en", Value: "a respectful greeting"}},
			Attributes:   []domain.Attribute{{Key: "pos", Value: "indeclinable"}},
			Phonetic:     "namaste",
			SourceData:   domain.SourceData{"audio": "audio/namaste.ogg"},
			CreatedAt:    base,
		},
		{
			ID:        "e-yoga",
			Origin:    "mw",
			WordIndex: 2,
			Words: []domain.WordRendering{
				{Language: "sa", Value: "योग"},
				{Language: "sa-Latn", Value: "yoga"},
			},
			Descriptions: []domain.Gloss{{Language: "en", Value: "union; yoking; spiritual discipline"}},
			Phonetic:     "yoga",
			CreatedAt:    base.AddDate(0, 1, 0),
		},
		{
			ID:        "e-dharma",
			Origin:    "ap90",
			WordIndex: 1,
			Words: []domain.WordRendering{
				{Language: "sa", Value: "धर्म"},
				{Language: "sa-Latn", Value: "dharma"},
			},
			Descriptions: []domain.Gloss{{Language: "en", Value: "law, duty, order"}},
			Attributes:   []domain.Attribute{{Key: "pos", Value: "noun"}},
			Phonetic:     "dharma",
			CreatedAt:    base.AddDate(0, 2, 0),
		},
	}
	if err := ImportEntries(context.Background(), db, entries); err != nil {
		t.Fatalf("ImportEntries: %v", err)
	}
}

func TestFindWords_SubstringCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	got, err := FindWords(context.Background(), db, domain.RepositoryQuery{
		QueryText: "NAMA", Limit: 10,
	})
	if err != nil {
		t.Fatalf("FindWords: %v", err)
	}
	if len(got.Data) != 1 || got.Data[0].ID != "e-namaste" {
		t.Fatalf("unexpected result: %+v", got.Data)
	}
	if got.Total != 1 || got.HasMore {
		t.Fatalf("total=%d hasMore=%v", got.Total, got.HasMore)
	}
}

func TestFindWords_MatchesScriptVariant(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	got, err := FindWords(context.Background(), db, domain.RepositoryQuery{
		QueryText: "xyz-no-direct-match", Variants: []string{"योग"}, Limit: 10,
	})
	if err != nil {
		t.Fatalf("FindWords: %v", err)
	}
	if len(got.Data) != 1 || got.Data[0].ID != "e-yoga" {
		t.Fatalf("variant did not match: %+v", got.Data)
	}
}

func TestFindWords_WildcardCharactersAreLiteral(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	ctx := context.Background()

	// "%" and "_" are plain text in the contains contract, not SQL wildcards:
	// "n%e" must not skip across "namaste".
	for _, q := range []string{"n%e", "n_m", "100%"} {
		got, err := FindWords(ctx, db, domain.RepositoryQuery{QueryText: q, Limit: 10})
		if err != nil {
			t.Fatalf("FindWords(%q): %v", q, err)
		}
		if got.Total != 0 || len(got.Data) != 0 {
			t.Fatalf("FindWords(%q) matched %d entries; want 0", q, got.Total)
		}
	}

	// An entry whose rendering really contains "%" is still found.
	withPercent := domain.DictionaryEntry{
		ID:        "e-percent",
		Origin:    "mw",
		WordIndex: 9,
		Words:     []domain.WordRendering{{Language: "sa-Latn", Value: "sata% rare"}},
		Phonetic:  "sata",
	}
	if err := ImportEntries(ctx, db, []domain.DictionaryEntry{withPercent}); err != nil {
		t.Fatalf("ImportEntries: %v", err)
	}
	got, err := FindWords(ctx, db, domain.RepositoryQuery{QueryText: "sata%", Limit: 10})
	if err != nil {
		t.Fatalf("FindWords: %v", err)
	}
	if got.Total != 1 || got.Data[0].ID != "e-percent" {
		t.Fatalf("literal %% lookup: %+v", got)
	}
}

func TestFindWords_Filters(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	ctx := context.Background()

	cases := []struct {
		name string
		q    domain.RepositoryQuery
		want []string
	}{
		{"origins", domain.RepositoryQuery{Origins: []string{"ap90"}, Limit: 10}, []string{"e-dharma"}},
		{"hasAudio true", domain.RepositoryQuery{HasAudio: bptr(true), Limit: 10}, []string{"e-namaste"}},
		{"hasAudio false", domain.RepositoryQuery{HasAudio: bptr(false), Limit: 10}, []string{"e-yoga", "e-dharma"}},
		{"hasAttributes false", domain.RepositoryQuery{HasAttributes: bptr(false), Limit: 10}, []string{"e-yoga"}},
		{"length bounds", domain.RepositoryQuery{WordLengthMin: iptr(5), WordLengthMax: iptr(6), Limit: 10}, []string{"e-dharma"}},
	}
	for _, c := range cases {
		got, err := FindWords(ctx, db, c.q)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		ids := map[string]bool{}
		for _, e := range got.Data {
			ids[e.ID] = true
		}
		if len(got.Data) != len(c.want) {
			t.Errorf("%s: got %d entries %v; want %v", c.name, len(got.Data), ids, c.want)
			continue
		}
		for _, w := range c.want {
			if !ids[w] {
				t.Errorf("%s: missing %s in %v", c.name, w, ids)
			}
		}
	}
}

func TestFindWords_LanguageFilter(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	lang := "sa-Latn"
	got, err := FindWords(context.Background(), db, domain.RepositoryQuery{Language: &lang, Limit: 10})
	if err != nil {
		t.Fatalf("FindWords: %v", err)
	}
	if got.Total != 3 {
		t.Fatalf("all fixtures carry a sa-Latn rendering, got total=%d", got.Total)
	}
}

func TestFindWords_DateRange(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	after := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	got, err := FindWords(context.Background(), db, domain.RepositoryQuery{CreatedAfter: &after, Limit: 10})
	if err != nil {
		t.Fatalf("FindWords: %v", err)
	}
	if got.Total != 2 {
		t.Fatalf("want the two later entries, got %d", got.Total)
	}
}

func TestFindWords_PaginationInvariant(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	ctx := context.Background()

	first, err := FindWords(ctx, db, domain.RepositoryQuery{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if first.Total != 3 || !first.HasMore || len(first.Data) != 2 {
		t.Fatalf("page 1: total=%d hasMore=%v len=%d", first.Total, first.HasMore, len(first.Data))
	}
	second, err := FindWords(ctx, db, domain.RepositoryQuery{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if second.HasMore || len(second.Data) != 1 {
		t.Fatalf("page 2: hasMore=%v len=%d", second.HasMore, len(second.Data))
	}
}

func TestFindWords_PhoneticSort(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	got, err := FindWords(context.Background(), db, domain.RepositoryQuery{
		SortBy: domain.SortPhonetic, SortDirection: domain.SortAsc, Limit: 10,
	})
	if err != nil {
		t.Fatalf("FindWords: %v", err)
	}
	want := []string{"dharma", "namaste", "yoga"}
	for i, e := range got.Data {
		if e.Phonetic != want[i] {
			t.Fatalf("phonetic order = %v", got.Data)
		}
	}
}

func TestAggregateSearch_ShortQueryDelegates(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	// One rune: must take the pattern path, which matches the substring "y".
	got, err := AggregateSearch(context.Background(), db, domain.RepositoryQuery{
		QueryText: "y", Limit: 10,
	})
	if err != nil {
		t.Fatalf("AggregateSearch: %v", err)
	}
	if got.Total != 1 || got.Data[0].ID != "e-yoga" {
		t.Fatalf("delegated path result: %+v", got)
	}
}

func TestAggregateSearch_FullTextOverGlosses(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	// "greeting" appears only in the namaste gloss, so the FTS path must
	// find it even though no word rendering contains it.
	got, err := AggregateSearch(context.Background(), db, domain.RepositoryQuery{
		QueryText: "greeting", SortBy: domain.SortRelevance, Limit: 10,
	})
	if err != nil {
		t.Fatalf("AggregateSearch: %v", err)
	}
	if got.Total != 1 || len(got.Data) != 1 || got.Data[0].ID != "e-namaste" {
		t.Fatalf("full-text result: %+v", got)
	}
}

func TestAggregateSearch_RespectsFilters(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	// Both "namaste" and "yoga" match the prefix token "nam"* / "yog"*;
	// restrict to ap90 so neither qualifies.
	got, err := AggregateSearch(context.Background(), db, domain.RepositoryQuery{
		QueryText: "namaste", Origins: []string{"ap90"}, Limit: 10,
	})
	if err != nil {
		t.Fatalf("AggregateSearch: %v", err)
	}
	if got.Total != 0 || len(got.Data) != 0 || got.HasMore {
		t.Fatalf("filtered FTS result: %+v", got)
	}
}

func TestAggregateSearch_VariantTokensMatch(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)

	got, err := AggregateSearch(context.Background(), db, domain.RepositoryQuery{
		QueryText: "zzzz", Variants: []string{"धर्म"}, Limit: 10,
	})
	if err != nil {
		t.Fatalf("AggregateSearch: %v", err)
	}
	if got.Total != 1 || got.Data[0].ID != "e-dharma" {
		t.Fatalf("variant token result: %+v", got)
	}
}

func TestFindByID(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	ctx := context.Background()

	e, err := FindByID(ctx, db, "e-yoga")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if e.Phonetic != "yoga" || len(e.Words) != 2 {
		t.Fatalf("loaded entry: %+v", e)
	}
	if _, err := FindByID(ctx, db, "missing"); err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestImportEntries_UpsertRewritesFTS(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	ctx := context.Background()

	// Replace the yoga gloss and re-import; the old gloss must stop matching.
	updated := domain.DictionaryEntry{
		ID:        "e-yoga",
		Origin:    "mw",
		WordIndex: 2,
		Words:     []domain.WordRendering{{Language: "sa-Latn", Value: "yoga"}},
		Descriptions: []domain.Gloss{
			{Language: "en", Value: "meditation practice"},
		},
		Phonetic: "yoga",
	}
	if err := ImportEntries(ctx, db, []domain.DictionaryEntry{updated}); err != nil {
		t.Fatalf("re-import: %v", err)
	}

	stale, err := AggregateSearch(ctx, db, domain.RepositoryQuery{QueryText: "yoking", Limit: 10})
	if err != nil {
		t.Fatalf("stale search: %v", err)
	}
	if stale.Total != 0 {
		t.Fatalf("stale FTS text still matches: %+v", stale)
	}
	fresh, err := AggregateSearch(ctx, db, domain.RepositoryQuery{QueryText: "meditation", Limit: 10})
	if err != nil {
		t.Fatalf("fresh search: %v", err)
	}
	if fresh.Total != 1 || fresh.Data[0].ID != "e-yoga" {
		t.Fatalf("fresh FTS text not matching: %+v", fresh)
	}
}

func TestCountEntries(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	n, err := CountEntries(context.Background(), db)
	if err != nil || n != 3 {
		t.Fatalf("CountEntries = %d, %v", n, err)
	}
}
