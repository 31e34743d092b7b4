package interactions

// Kind identifies which join table a toggle operates on. Likes and
// favorites share the same shape and invariant but live in independent
// namespaces.
type Kind string

const (
	KindLike     Kind = "like"
	KindFavorite Kind = "favorite"
)

// ToggleResult reports the state after a toggle. Active means the
// (post, user) row exists after the operation.
type ToggleResult struct {
	Active bool
}

// ToggleLikeResponse is the wire response for POST /posts/{postId}/like
type ToggleLikeResponse struct {
	Message string `json:"message"`
	Liked   bool   `json:"liked"`
}

// ToggleFavoriteResponse is the wire response for POST /posts/{postId}/favorite
type ToggleFavoriteResponse struct {
	Message   string `json:"message"`
	Favorited bool   `json:"favorited"`
}
