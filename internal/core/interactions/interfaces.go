package interactions

import "context"

// Service defines the business logic interface for like/favorite toggles.
// A toggle is an unconditional flip: delete-if-present, insert-if-absent.
// It is not a set-to-value call.
type Service interface {
	ToggleLike(ctx context.Context, postID, userID int64) (*ToggleResult, error)
	ToggleFavorite(ctx context.Context, postID, userID int64) (*ToggleResult, error)
}

// Repository defines the data access interface for the likes and
// favorites join tables.
type Repository interface {
	// Remove deletes the (post, user) row for the given kind.
	// Returns true when a row was actually deleted.
	Remove(ctx context.Context, kind Kind, postID, userID int64) (bool, error)

	// Insert adds the (post, user) row for the given kind using a
	// conflict-tolerant insert. Returns true when a new row was created,
	// false when the row already existed (a concurrent duplicate toggle).
	// Returns ErrPostNotFound when the post does not exist.
	Insert(ctx context.Context, kind Kind, postID, userID int64) (bool, error)
}
