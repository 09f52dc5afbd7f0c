// Filter validation endpoint.
//
// POST /filters/validate checks a structured filter state for logical
// consistency without running a search. Valid filters additionally get their
// canonical URL serialization back, so clients can build shareable links.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sabdakosha/lexicon-backend/internal/domain"
	"github.com/sabdakosha/lexicon-backend/internal/filter"
)

// ValidateFiltersResponse wraps the validation outcome. Canonical is only set
// for valid, non-empty filters.
type ValidateFiltersResponse struct {
	filter.ValidationResult
	// Canonical is the stable query-string form of the filter.
	Canonical string `json:"canonical,omitempty"`
}

// ValidateFilters handles POST /filters/validate. Validation failures are
// reported in the 200 response body, not as HTTP errors; only a malformed
// request yields 400.
func (h *Handlers) ValidateFilters(c *gin.Context) {
	var f domain.UserFilter
	if err := c.ShouldBindJSON(&f); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	resp := ValidateFiltersResponse{ValidationResult: filter.Validate(f)}
	if resp.Valid {
		resp.Canonical = filter.Serialize(f)
	}
	ok(c, http.StatusOK, resp)
}
