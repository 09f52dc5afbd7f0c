// Package script provides script-aware text utilities for the lexicon search
// core: Unicode script detection, word-boundary segmentation, highlight
// segment computation, diacritic-insensitive comparison, and transliteration
// between the supported writing schemes.
//
// The package is deterministic and dependency-light (x/text only); it does no
// logging and no I/O, so callers decide how to report per-scheme failures.
package script

import "unicode"

// Script classifies text by Unicode block membership.
type Script string

const (
	// ScriptDevanagari is the primary Indic script of the corpus.
	ScriptDevanagari Script = "devanagari"
	// ScriptTelugu is the secondary Indic script of the corpus.
	ScriptTelugu Script = "telugu"
	// ScriptLatin covers Roman text, including diacritic transliterations.
	ScriptLatin Script = "latin"
	// ScriptMixed is reported when more than one block is present.
	ScriptMixed Script = "mixed"
	// ScriptUnknown is reported when no letter of a known block is present.
	ScriptUnknown Script = "unknown"
)

// Detect classifies text into one of the supported scripts. Characters that
// are not letters (digits, punctuation, spaces) are ignored; text containing
// letters from more than one block is ScriptMixed, and text with no letters
// of any known block is ScriptUnknown.
func Detect(text string) Script {
	var seen Script
	for _, r := range text {
		var s Script
		switch {
		case unicode.In(r, unicode.Devanagari):
			s = ScriptDevanagari
		case unicode.In(r, unicode.Telugu):
			s = ScriptTelugu
		case unicode.In(r, unicode.Latin):
			s = ScriptLatin
		default:
			continue
		}
		if seen == "" {
			seen = s
			continue
		}
		if seen != s {
			return ScriptMixed
		}
	}
	if seen == "" {
		return ScriptUnknown
	}
	return seen
}
