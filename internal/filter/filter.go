// Package filter implements the user-facing filter service: validation of
// filter state, conversion into repository queries, and the stable URL wire
// format used for bookmarkable/shareable searches.
//
// Every operation is pure and stateless. Validation returns a structured
// result instead of errors; deserialization is forgiving (unparsable or
// out-of-range values decode to "unset", never to a failure).
package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sabdakosha/lexicon-backend/internal/domain"
)

// Wire-format parameter names (see the service boundary contract). A missing
// key means "unset"; absent is not the same as false for booleans.
const (
	paramOrigins       = "origins"
	paramLanguage      = "language"
	paramWordLengthMin = "wordLengthMin"
	paramWordLengthMax = "wordLengthMax"
	paramHasAudio      = "hasAudio"
	paramHasAttributes = "hasAttributes"
	paramDateStart     = "dateStart"
	paramDateEnd       = "dateEnd"
)

// FieldError is a validation failure scoped to a single filter field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of Validate. Warnings are advisory and do
// not make the filter invalid.
type ValidationResult struct {
	Valid    bool         `json:"valid"`
	Errors   []FieldError `json:"errors,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Validate checks the logical consistency of a filter: positive length
// bounds, min <= max, and an ordered date range. An entirely empty filter is
// valid but carries a "no filters applied" warning so callers can surface it.
func Validate(f domain.UserFilter) ValidationResult {
	var res ValidationResult

	if f.WordLengthMin != nil && *f.WordLengthMin <= 0 {
		res.Errors = append(res.Errors, FieldError{
			Field:   "wordLengthMin",
			Message: "must be a positive integer",
		})
	}
	if f.WordLengthMax != nil && *f.WordLengthMax <= 0 {
		res.Errors = append(res.Errors, FieldError{
			Field:   "wordLengthMax",
			Message: "must be a positive integer",
		})
	}
	if f.WordLengthMin != nil && f.WordLengthMax != nil && *f.WordLengthMin > *f.WordLengthMax {
		res.Errors = append(res.Errors, FieldError{
			Field: "wordLengthMin",
			Message: fmt.Sprintf("minimum word length (%d) exceeds maximum (%d)",
				*f.WordLengthMin, *f.WordLengthMax),
		})
	}
	if f.DateRange != nil && f.DateRange.Start != nil && f.DateRange.End != nil &&
		f.DateRange.Start.After(*f.DateRange.End) {
		res.Errors = append(res.Errors, FieldError{
			Field:   "dateRange",
			Message: "start date is after end date",
		})
	}

	res.Valid = len(res.Errors) == 0
	if res.Valid && IsEmpty(f) {
		res.Warnings = append(res.Warnings, "no filters applied")
	}
	return res
}

// BuildQuery converts a filter plus pagination and sorting into a repository
// query. Nil fields are omitted rather than passed through; the date range
// contributes bounds only for the sides that are set. The query text and its
// script variants are filled in later by the search service.
func BuildQuery(f domain.UserFilter, p domain.Pagination, sortBy domain.SortField, sortDirection string) domain.RepositoryQuery {
	q := domain.RepositoryQuery{
		SortBy:        sortBy,
		SortDirection: sortDirection,
		Limit:         p.Limit,
		Offset:        p.Offset,
	}
	if len(f.Origins) > 0 {
		q.Origins = append([]string(nil), f.Origins...)
	}
	if f.Language != nil && *f.Language != "" {
		lang := *f.Language
		q.Language = &lang
	}
	if f.WordLengthMin != nil {
		v := *f.WordLengthMin
		q.WordLengthMin = &v
	}
	if f.WordLengthMax != nil {
		v := *f.WordLengthMax
		q.WordLengthMax = &v
	}
	if f.HasAudio != nil {
		v := *f.HasAudio
		q.HasAudio = &v
	}
	if f.HasAttributes != nil {
		v := *f.HasAttributes
		q.HasAttributes = &v
	}
	if f.DateRange != nil {
		if f.DateRange.Start != nil {
			t := *f.DateRange.Start
			q.CreatedAfter = &t
		}
		if f.DateRange.End != nil {
			t := *f.DateRange.End
			q.CreatedBefore = &t
		}
	}
	return q
}

// Serialize encodes a filter into its canonical URL-parameter form. Unset
// fields are omitted entirely; an empty filter serializes to the empty
// string. Origins are joined with commas (encoded as %2C), booleans as
// "true"/"false", dates as RFC 3339 (ISO-8601).
func Serialize(f domain.UserFilter) string {
	v := url.Values{}
	if len(f.Origins) > 0 {
		v.Set(paramOrigins, strings.Join(f.Origins, ","))
	}
	if f.Language != nil && *f.Language != "" {
		v.Set(paramLanguage, *f.Language)
	}
	if f.WordLengthMin != nil {
		v.Set(paramWordLengthMin, strconv.Itoa(*f.WordLengthMin))
	}
	if f.WordLengthMax != nil {
		v.Set(paramWordLengthMax, strconv.Itoa(*f.WordLengthMax))
	}
	if f.HasAudio != nil {
		v.Set(paramHasAudio, strconv.FormatBool(*f.HasAudio))
	}
	if f.HasAttributes != nil {
		v.Set(paramHasAttributes, strconv.FormatBool(*f.HasAttributes))
	}
	if f.DateRange != nil {
		if f.DateRange.Start != nil {
			v.Set(paramDateStart, f.DateRange.Start.UTC().Format(time.RFC3339))
		}
		if f.DateRange.End != nil {
			v.Set(paramDateEnd, f.DateRange.End.UTC().Format(time.RFC3339))
		}
	}
	return v.Encode()
}

// Deserialize is the inverse of Serialize over url.Values. Unparsable or
// out-of-range values (non-positive lengths, invalid dates, unknown boolean
// spellings) are treated as absent rather than reported as errors, so a
// mangled bookmark still produces a usable search.
func Deserialize(v url.Values) domain.UserFilter {
	var f domain.UserFilter

	if raw := v.Get(paramOrigins); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				f.Origins = append(f.Origins, o)
			}
		}
	}
	if raw := v.Get(paramLanguage); raw != "" {
		f.Language = &raw
	}
	if n, ok := parsePositiveInt(v.Get(paramWordLengthMin)); ok {
		f.WordLengthMin = &n
	}
	if n, ok := parsePositiveInt(v.Get(paramWordLengthMax)); ok {
		f.WordLengthMax = &n
	}
	if b, ok := parseBool(v.Get(paramHasAudio)); ok {
		f.HasAudio = &b
	}
	if b, ok := parseBool(v.Get(paramHasAttributes)); ok {
		f.HasAttributes = &b
	}
	start, okStart := parseTime(v.Get(paramDateStart))
	end, okEnd := parseTime(v.Get(paramDateEnd))
	if okStart || okEnd {
		f.DateRange = &domain.DateRange{}
		if okStart {
			f.DateRange.Start = &start
		}
		if okEnd {
			f.DateRange.End = &end
		}
	}
	return f
}

// DeserializeString parses a raw query string ("origins=mw&hasAudio=true").
// A string that does not parse as URL parameters yields the empty filter.
func DeserializeString(s string) domain.UserFilter {
	v, err := url.ParseQuery(s)
	if err != nil {
		return domain.UserFilter{}
	}
	return Deserialize(v)
}

// Empty returns a filter with every field unset.
func Empty() domain.UserFilter { return domain.UserFilter{} }

// IsEmpty reports whether no filter field is set. A present-but-empty date
// range counts as unset.
func IsEmpty(f domain.UserFilter) bool {
	return len(f.Origins) == 0 &&
		f.Language == nil &&
		f.WordLengthMin == nil &&
		f.WordLengthMax == nil &&
		f.HasAudio == nil &&
		f.HasAttributes == nil &&
		(f.DateRange == nil || (f.DateRange.Start == nil && f.DateRange.End == nil))
}

// Merge returns a copy of base with every set field of partial applied over
// it. Neither argument is mutated; unset fields of partial leave the base
// value in place.
func Merge(base, partial domain.UserFilter) domain.UserFilter {
	out := base
	if partial.Origins != nil {
		out.Origins = append([]string(nil), partial.Origins...)
	}
	if partial.Language != nil {
		v := *partial.Language
		out.Language = &v
	}
	if partial.WordLengthMin != nil {
		v := *partial.WordLengthMin
		out.WordLengthMin = &v
	}
	if partial.WordLengthMax != nil {
		v := *partial.WordLengthMax
		out.WordLengthMax = &v
	}
	if partial.HasAudio != nil {
		v := *partial.HasAudio
		out.HasAudio = &v
	}
	if partial.HasAttributes != nil {
		v := *partial.HasAttributes
		out.HasAttributes = &v
	}
	if partial.DateRange != nil {
		dr := domain.DateRange{}
		if partial.DateRange.Start != nil {
			t := *partial.DateRange.Start
			dr.Start = &t
		}
		if partial.DateRange.End != nil {
			t := *partial.DateRange.End
			dr.End = &t
		}
		out.DateRange = &dr
	}
	return out
}

func parsePositiveInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Date-only bookmarks ("2024-01-31") are accepted as midnight UTC.
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, false
		}
	}
	return t.UTC(), true
}
