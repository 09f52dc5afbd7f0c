// Search HTTP handlers.
//
// This file exposes the public search endpoints:
//   - GET  /search   (query string + filter params, bookmarkable)
//   - POST /search   (JSON body with structured filter state)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. The success payload is the typed
// service envelope; failures are mapped onto the standard error envelope.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sabdakosha/lexicon-backend/internal/domain"
	"github.com/sabdakosha/lexicon-backend/internal/filter"
	"github.com/sabdakosha/lexicon-backend/internal/services"
	"github.com/sabdakosha/lexicon-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// SearchService defines the search operation consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type SearchService interface {
	// PerformSearch executes one search request and never returns a Go
	// error; failures are reported through the envelope.
	PerformSearch(ctx context.Context, opts domain.SearchOptions) domain.ServiceResponse[domain.SearchResult]
}

// EntryService defines single-entry lookup consumed by HTTP handlers.
type EntryService interface {
	// Get fetches one entry by id; services.ErrEntryNotFound signals 404.
	Get(ctx context.Context, id string) (*domain.DictionaryEntry, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for search, entries, and filter validation.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	searchSvc SearchService
	entrySvc  EntryService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(searchSvc SearchService, entrySvc EntryService) *Handlers {
	return &Handlers{searchSvc: searchSvc, entrySvc: entrySvc}
}

//
// DTOs
//

// SearchRequest is the JSON payload for POST /search. Filters are optional;
// a nil Filters means "no filtering".
type SearchRequest struct {
	// Query is the search text in any supported script.
	Query string `json:"query"`
	// Filters carries the structured filter state.
	Filters *domain.UserFilter `json:"filters,omitempty"`
	// SortBy is one of: relevance, alphabetical, wordLength (default: corpus order).
	SortBy string `json:"sortBy,omitempty"`
	// SortDirection is "asc" or "desc".
	SortDirection string `json:"sortDirection,omitempty"`
	Limit         int    `json:"limit,omitempty"`
	Offset        int    `json:"offset,omitempty"`
}

//
// Helpers
//

// searchOptionsFromQuery builds SearchOptions from GET query parameters.
// Filter parameters use the stable wire format, so a serialized filter state
// round-trips through the URL unchanged.
func searchOptionsFromQuery(c *gin.Context) domain.SearchOptions {
	return domain.SearchOptions{
		QueryText:     c.Query("q"),
		Filters:       filter.Deserialize(c.Request.URL.Query()),
		SortBy:        c.Query("sortBy"),
		SortDirection: strings.ToLower(c.Query("sortDirection")),
		Pagination: domain.Pagination{
			Limit:  utils.AtoiDefault(c.Query("limit"), 0),
			Offset: utils.AtoiDefault(c.Query("offset"), 0),
		},
	}
}

// respondSearch translates the service envelope into an HTTP response.
func respondSearch(c *gin.Context, resp domain.ServiceResponse[domain.SearchResult]) {
	if !resp.OK() {
		msg := resp.Error
		if resp.Details != "" {
			msg = resp.Details
		}
		if resp.Error == services.MsgInvalidFilters {
			fail(c, http.StatusBadRequest, ErrCodeInvalidFilters, msg)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeSearchFailed, msg)
		return
	}
	ok(c, http.StatusOK, resp)
}

//
// Handlers
//

// Search handles GET /search. The query text comes from "q"; filters use the
// wire-format parameters (origins, language, wordLengthMin, ...); sorting and
// pagination come from "sortBy", "sortDirection", "limit", and "offset".
func (h *Handlers) Search(c *gin.Context) {
	resp := h.searchSvc.PerformSearch(c.Request.Context(), searchOptionsFromQuery(c))
	respondSearch(c, resp)
}

// SearchPost handles POST /search with a structured JSON body. It exists for
// clients whose filter state is richer than comfortably fits in a URL.
func (h *Handlers) SearchPost(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	opts := domain.SearchOptions{
		QueryText:     req.Query,
		SortBy:        req.SortBy,
		SortDirection: strings.ToLower(req.SortDirection),
		Pagination:    domain.Pagination{Limit: req.Limit, Offset: req.Offset},
	}
	if req.Filters != nil {
		opts.Filters = *req.Filters
	}
	respondSearch(c, h.searchSvc.PerformSearch(c.Request.Context(), opts))
}

// GetEntry handles GET /entries/:id.
func (h *Handlers) GetEntry(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "entry id required")
		return
	}

	e, err := h.entrySvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "entry not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, e)
}
