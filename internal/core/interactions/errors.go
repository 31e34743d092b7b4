package interactions

import "errors"

// Sentinel errors for toggle operations
var (
	// ErrPostNotFound is returned when the target post does not exist
	// (surfaced as a foreign key violation on insert)
	ErrPostNotFound = errors.New("post not found")
)
