package feed

import (
	"context"

	"github.com/MarinaMenezess/devSocial/internal/core/posts"
)

// Service defines the business logic interface for feed queries.
//
// The viewer id is an explicit option rather than ambient request state:
// callers that decoded a valid bearer token pass the user id, everyone
// else passes nil and gets the anonymous view with no liked_by_user field.
type Service interface {
	// Search returns posts newest-first (created_at DESC, id DESC as the
	// tie-break). A non-empty query filters to posts whose title or
	// content contains it as a case-insensitive substring.
	Search(ctx context.Context, query string, viewerID *int64) ([]*posts.PostView, error)

	// ListByAuthor returns the given user's own posts, newest first.
	ListByAuthor(ctx context.Context, authorID int64) ([]*posts.PostView, error)

	// ListFavorites returns the posts the user has favorited, ordered by
	// when they were favorited, newest first.
	ListFavorites(ctx context.Context, userID int64) ([]*posts.PostView, error)
}

// Repository defines the data access interface for feed queries
type Repository interface {
	Search(ctx context.Context, query string, viewerID *int64) ([]*posts.PostView, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*posts.PostView, error)
	ListFavorites(ctx context.Context, userID int64) ([]*posts.PostView, error)
}
