package search

import "errors"

var (
	// Client errors: reported as is, no fallback is attempted.
	ErrInvalidFilterRange = errors.New("invalid filter range")
	ErrInvalidSort        = errors.New("invalid sort")

	// ErrUpstreamUnavailable wraps any failure of a listing source. The
	// resolver never retries; callers may retry the whole search.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
