// Package services defines the business logic of the lexicon backend: the
// search orchestration over the repository and single-entry lookup. This
// file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; mapping
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

var (
	// ErrEntryNotFound indicates that the requested dictionary entry does
	// not exist.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidFilters is returned when the caller's filter state fails
	// validation; the accompanying validation result carries the details.
	ErrInvalidFilters = errors.New("invalid filters")
)

// User-safe error messages placed in ServiceResponse envelopes. The
// underlying cause is preserved separately in the Details field. Exported so
// the handler layer can map envelope failures onto HTTP status codes without
// duplicating the strings.
const (
	MsgSearchFailed   = "Search failed"
	MsgInvalidFilters = "Invalid filters"
)
