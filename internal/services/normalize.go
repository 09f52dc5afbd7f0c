package services

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/sabdakosha/lexicon-backend/internal/script"
)

// sourceSchemes maps a detected script to the transliteration schemes the
// query may be written in. Roman queries are ambiguous between the
// diacritic and the ASCII scheme, so both are tried; mixed or unknown text
// is not expanded at all.
func sourceSchemes(s script.Script) []script.Scheme {
	switch s {
	case script.ScriptDevanagari:
		return []script.Scheme{script.SchemeDevanagari}
	case script.ScriptTelugu:
		return []script.Scheme{script.SchemeTelugu}
	case script.ScriptLatin:
		return []script.Scheme{script.SchemeIAST, script.SchemeHK}
	default:
		return nil
	}
}

// normalizeScripts expands a query into its script/transliteration variants:
// for every plausible source scheme of the detected script, the query is
// converted into each remaining candidate scheme. Failures of an individual
// scheme are logged and skipped; the original query is always retained by
// the caller, so normalization can never make a search fail.
func normalizeScripts(query string, lg zerolog.Logger) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var variants []string
	seen := map[string]struct{}{query: {}}
	for _, from := range sourceSchemes(script.Detect(query)) {
		for _, to := range script.Schemes() {
			if to == from {
				continue
			}
			v, err := script.Transliterate(query, from, to)
			if err != nil {
				lg.Debug().
					Str("query", query).
					Str("from", string(from)).
					Str("to", string(to)).
					Err(err).
					Msg("transliteration variant skipped")
				continue
			}
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			variants = append(variants, v)
		}
	}
	return variants
}
