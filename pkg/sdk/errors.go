package thriftfind

import "github.com/kailas-cloud/thriftfind/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrInvalidQuery      = domain.ErrInvalidQuery
	ErrExtraction        = domain.ErrExtraction
	ErrMissingCredential = domain.ErrMissingCredential
	ErrRateLimited       = domain.ErrRateLimited
)
