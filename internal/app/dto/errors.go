package dto

import "errors"

// Submission and gesture errors
var (
	// ErrSubmitFailed is the single generic failure surfaced to the user
	// for any network, status or decode problem during submission. The
	// underlying cause is logged, not distinguished.
	ErrSubmitFailed = errors.New("pipeline submission failed")

	ErrNoDropBounds   = errors.New("drop target bounds unavailable")
	ErrBadDropPayload = errors.New("malformed drag payload")
)
