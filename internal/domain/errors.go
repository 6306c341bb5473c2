package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuery signals a malformed search request (bad limit, malformed term groups).
	ErrInvalidQuery = errors.New("invalid query")

	// ErrExtraction signals that the remote term extractor could not produce term groups.
	// Always recovered by the local extractor, never returned to API callers.
	ErrExtraction = errors.New("term extraction failed")
	// ErrMissingCredential signals that the remote extractor has no API key configured.
	ErrMissingCredential = errors.New("missing extractor credential")
	// ErrRateLimited signals that the extractor's client-side request budget is exhausted.
	ErrRateLimited = errors.New("rate limited")

	// ErrStorageUnavailable signals a failed candidate fetch.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
