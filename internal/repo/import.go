// Package repo — entry ingestion support. Entries are produced by an
// external import pipeline; this file is its landing point. It is the only
// write path of the service and is responsible for keeping the FTS5 mirror
// in step with the entries table.
package repo

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sabdakosha/lexicon-backend/internal/domain"
)

// ImportEntries upserts a batch of entries and rewrites their FTS mirror
// rows in one transaction. Entries without an ID are assigned one.
func ImportEntries(ctx context.Context, db *gorm.DB, entries []domain.DictionaryEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range entries {
			if entries[i].ID == "" {
				entries[i].ID = uuid.NewString()
			}
			e := &entries[i]
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(e).Error; err != nil {
				return err
			}
			if err := tx.Exec(`DELETE FROM entries_fts WHERE entry_id = ?`, e.ID).Error; err != nil {
				return err
			}
			if err := tx.Exec(
				`INSERT INTO entries_fts (entry_id, content_text) VALUES (?, ?)`,
				e.ID, searchableText(e),
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CountEntries returns the total number of entries in the store.
func CountEntries(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.DictionaryEntry{}).Count(&total).Error
	return total, err
}

// SeedFromJSONL loads entries from a JSON Lines file (one DictionaryEntry
// document per line, blank lines and #-comments skipped) and imports them.
// It returns the number of entries imported.
func SeedFromJSONL(ctx context.Context, db *gorm.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var batch []domain.DictionaryEntry
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		var e domain.DictionaryEntry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return 0, fmt.Errorf("seed line %d: %w", line, err)
		}
		batch = append(batch, e)
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	if err := ImportEntries(ctx, db, batch); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// searchableText flattens everything the full-text path should match: all
// word renderings, the phonetic form, and all glosses.
func searchableText(e *domain.DictionaryEntry) string {
	var b strings.Builder
	for _, w := range e.Words {
		b.WriteString(w.Value)
		b.WriteByte(' ')
	}
	b.WriteString(e.Phonetic)
	for _, d := range e.Descriptions {
		b.WriteByte(' ')
		b.WriteString(d.Value)
	}
	return b.String()
}
