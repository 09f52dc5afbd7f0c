// Package domain defines the core data model of the lexicon backend: the
// dictionary entry as stored in the document store, the user-facing filter
// state, the repository query object, and the typed search results exchanged
// with API collaborators. These types are mapped with GORM where persisted
// and are otherwise plain transport values constructed per request.
package domain

import (
	"time"
)

// WordRendering is one rendering of a headword in a particular language or
// script (e.g. the Devanagari form and an IAST romanization of the same word).
type WordRendering struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Gloss is a single description/definition of an entry in a given language.
type Gloss struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Attribute is an arbitrary key/value metadata pair attached to an entry
// (grammatical category, etymology markers, cross references, ...).
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SourceData carries opaque per-entry payload produced by the import
// pipeline. The search core only inspects the "audio" key (presence of a
// pronunciation recording); everything else is passed through untouched.
type SourceData map[string]any

// DictionaryEntry represents one lexicon entry. Entries are created and
// updated exclusively by the external import pipeline; from the point of
// view of this service they are immutable documents.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Origin: identifier of the source lexicon (e.g. "mw", "ap90"); indexed
//     together with WordIndex, the stable ordinal within that origin.
//   - Words: ordered list of {language, value} renderings of the headword.
//   - Descriptions: {language, value} glosses.
//   - Attributes: {key, value} metadata pairs.
//   - Phonetic: canonical transliterated form, used for sorting and as a
//     secondary match target.
//   - SourceData: opaque extra payload (audio pointer and friends).
type DictionaryEntry struct {
	ID           string          `json:"id"            gorm:"type:char(36);primaryKey"`
	Origin       string          `json:"origin"        gorm:"type:varchar(32);not null;index:idx_origin_word,priority:1"`
	WordIndex    int             `json:"word_index"    gorm:"not null;index:idx_origin_word,priority:2"`
	Words        []WordRendering `json:"words"         gorm:"serializer:json;type:text"`
	Descriptions []Gloss         `json:"descriptions"  gorm:"serializer:json;type:text"`
	Attributes   []Attribute     `json:"attributes"    gorm:"serializer:json;type:text"`
	Phonetic     string          `json:"phonetic"      gorm:"type:varchar(255);index"`
	SourceData   SourceData      `json:"source_data,omitempty" gorm:"serializer:json;type:text"`
	CreatedAt    time.Time       `json:"created_at"    gorm:"index"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TableName returns the database table name for DictionaryEntry.
func (DictionaryEntry) TableName() string { return "entries" }

// AudioURL extracts the pronunciation pointer from SourceData, if present.
func (e *DictionaryEntry) AudioURL() (string, bool) {
	if e.SourceData == nil {
		return "", false
	}
	v, ok := e.SourceData["audio"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// PrimaryWord returns the first word rendering, which by import convention is
// the preferred display form. The zero value is returned for entries without
// renderings (which the import pipeline should never produce).
func (e *DictionaryEntry) PrimaryWord() WordRendering {
	if len(e.Words) == 0 {
		return WordRendering{}
	}
	return e.Words[0]
}
