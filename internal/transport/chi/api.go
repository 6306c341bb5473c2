package chi

import (
	"github.com/kailas-cloud/thriftfind/internal/domain/listing"
	"github.com/kailas-cloud/thriftfind/internal/domain/search/result"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
)

// ErrorCode is the machine-readable error code in API error responses.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// SearchRequest is the body of POST /api/v1/search.
type SearchRequest struct {
	Query string `json:"query"`
	Limit *int   `json:"limit,omitempty"`
}

// TermSearchRequest is the body of POST /api/v1/search/terms.
type TermSearchRequest struct {
	TermGroups []term.Group `json:"term_groups"`
	Limit      *int         `json:"limit,omitempty"`
	Label      string       `json:"label,omitempty"`
}

// SearchResponse is the body of a successful search. Interpretation is
// omitted for an empty query.
type SearchResponse struct {
	Listings       []listing.Listing      `json:"listings"`
	Interpretation *result.Interpretation `json:"interpretation,omitempty"`
	Debug          *result.Debug          `json:"debug,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status         string            `json:"status"`
	Checks         map[string]string `json:"checks"`
	Version        string            `json:"version"`
	ActiveListings int64             `json:"active_listings"`
}
