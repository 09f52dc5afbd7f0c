package domain

import "time"

// DateRange bounds entry creation timestamps. Either side may be nil
// (unbounded); both bounds are inclusive.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// UserFilter is the user-facing, serializable filter state for a search.
// Every field is optional; nil means "not filtered on". Absent is not the
// same as false for the boolean filters: HasAudio == nil returns entries
// with and without audio, while *HasAudio == false returns only entries
// without audio.
//
// Invariants (enforced by the filter service, not by construction):
//   - WordLengthMin <= WordLengthMax when both are set
//   - both length bounds are positive when set
//   - DateRange.Start <= DateRange.End when both are set
type UserFilter struct {
	Origins       []string   `json:"origins,omitempty"`
	Language      *string    `json:"language,omitempty"`
	WordLengthMin *int       `json:"word_length_min,omitempty"`
	WordLengthMax *int       `json:"word_length_max,omitempty"`
	HasAudio      *bool      `json:"has_audio,omitempty"`
	HasAttributes *bool      `json:"has_attributes,omitempty"`
	DateRange     *DateRange `json:"date_range,omitempty"`
}
